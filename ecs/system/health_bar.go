package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

const healthBarTweenSeconds = 0.25

// HealthBar eases each bar's displayed fill toward its target's health
// fraction. A bar whose target is missing simply stops updating.
type HealthBar struct {
	Dt float64
}

func NewHealthBar(dt float64) *HealthBar {
	return &HealthBar{Dt: dt}
}

func (s *HealthBar) Update(w *ecs.World) {
	ecs.ForEach(w, component.HealthBarComponent.Kind(), func(_ ecs.Entity, bar *component.HealthBar) {
		h, ok := s.findTargetHealth(w, bar.TargetName)
		if !ok {
			return
		}

		target := float32(h.Fill())
		if target != bar.LastFill {
			bar.LastFill = target
			bar.Tween = gween.New(bar.Fill, target, healthBarTweenSeconds, ease.OutQuad)
		}
		if bar.Tween != nil {
			v, done := bar.Tween.Update(float32(s.Dt))
			bar.Fill = v
			if done {
				bar.Tween = nil
			}
		}
	})
}

func (s *HealthBar) findTargetHealth(w *ecs.World, name string) (*component.Health, bool) {
	if name != "player" {
		return nil, false
	}
	e, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.HealthComponent.Kind())
}
