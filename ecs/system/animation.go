package system

import (
	"image"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// Animation advances character animation frames on each character's own
// timer. Frame advancement is slower than the movement/AI tick: a state's
// frame rate spaces the wake-ups, and a state change restarts the timer at
// the new state's rate.
type Animation struct {
	Dt float64
}

func NewAnimation(dt float64) *Animation {
	return &Animation{Dt: dt}
}

func (s *Animation) Update(w *ecs.World) {
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if c.Dead {
			return
		}

		c.FrameTimer -= s.Dt
		if c.FrameTimer > 0 {
			return
		}
		c.FrameTimer += c.FrameRateFor(c.State)

		hp := 0
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			hp = h.Current
		}

		prev := c.State
		wrapped, changed := c.AdvanceFrame(hp)
		if changed {
			w.Events().Push(ecs.Event{
				Type: ecs.EventStateChanged,
				Data: ecs.StateChangeEvent{Entity: e, From: prev, To: c.State},
			})
		}
		if wrapped && c.Dead {
			w.Events().Push(ecs.Event{
				Type: ecs.EventDied,
				Data: ecs.DeathEvent{Entity: e},
			})
		}

		syncSprite(w, e, c)
	})
}

// syncSprite points the entity's sprite source rect at the current frame.
// Entities without animation data keep their sprite untouched.
func syncSprite(w *ecs.World, e ecs.Entity, c *component.Character) {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || anim.Sheet == nil {
		return
	}
	def, ok := anim.Defs[c.State]
	if !ok || def.FrameW <= 0 || def.FrameH <= 0 {
		return
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}

	col := def.ColStart + c.Frame
	x0 := col * def.FrameW
	y0 := def.Row * def.FrameH
	sprite.Image = anim.Sheet
	sprite.Source = image.Rect(x0, y0, x0+def.FrameW, y0+def.FrameH)
	sprite.UseSource = true
	sprite.FacingLeft = c.FacingLeft
}
