package system

import (
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// Camera eases the view center toward its target and clamps it to the
// level bounds. A camera that carries bounds also overrides every
// character's own boundary once at startup, so the level designer can
// tighten the playable strip from one place.
type Camera struct {
	ViewW float64
	ViewH float64

	boundsApplied bool
}

func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH}
}

func (s *Camera) Update(w *ecs.World) {
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		if !s.boundsApplied && cam.HasBounds {
			s.applyBoundsOverride(w, cam)
		}

		target, ok := s.findTarget(w, cam.TargetName)
		if ok {
			tx, ty := target.X, target.Y
			smoothing := cam.Smoothing
			if smoothing <= 0 || smoothing > 1 {
				smoothing = 1
			}
			cam.X += (tx - cam.X) * smoothing
			cam.Y += (ty - cam.Y) * smoothing
		}

		s.clamp(w, cam)
	})
	s.boundsApplied = true
}

// findTarget resolves the follow target. The name "player" binds to the
// player tag; anything else leaves the camera where it is.
func (s *Camera) findTarget(w *ecs.World, name string) (*component.Transform, bool) {
	if name != "player" {
		return nil, false
	}
	e, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.TransformComponent.Kind())
}

func (s *Camera) applyBoundsOverride(w *ecs.World, cam *component.Camera) {
	ecs.ForEach(w, component.BoundaryComponent.Kind(), func(_ ecs.Entity, b *component.Boundary) {
		b.Left = cam.BoundsLeft
		b.Right = cam.BoundsRight
	})
}

func (s *Camera) clamp(w *ecs.World, cam *component.Camera) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	levelW, levelH := pw.Size()
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	halfW := s.ViewW / (2 * zoom)
	halfH := s.ViewH / (2 * zoom)

	cam.X = clampFloat(cam.X, halfW, levelW-halfW)
	cam.Y = clampFloat(cam.Y, halfH, levelH-halfH)
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
