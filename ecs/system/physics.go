package system

import (
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// Physics steps the Chipmunk space and mirrors body positions back onto
// transforms. Bodies are created lazily the first tick an entity carries
// both a transform and a physics body description.
type Physics struct {
	Dt float64
}

func NewPhysics(dt float64) *Physics {
	return &Physics{Dt: dt}
}

func (s *Physics) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach2(w,
		component.TransformComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, pb *component.PhysicsBody) {
			pw.EnsureBody(e, t, pb)
		})

	pw.Step(s.Dt)

	ecs.ForEach2(w,
		component.TransformComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, pb *component.PhysicsBody) {
			if pb.Body == nil {
				return
			}
			pos := pb.Body.Position()
			t.X = pos.X - pb.Width/2 - pb.OffsetX
			t.Y = pos.Y - pb.Height/2 - pb.OffsetY
		})
}
