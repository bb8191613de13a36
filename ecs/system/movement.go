package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// ResolveMovement translates a movement intent into a horizontal velocity
// and a target locomotion state, honoring combat and boundary rules. It is
// shared by the player controller and the AI: only the intent source
// differs. Facing flips as a side effect whenever the requested direction
// disagrees with the current facing.
func ResolveMovement(c *component.Character, intent component.Intent, x float64, b component.Boundary, dt float64) (vx float64, state component.CharacterState) {
	if c == nil {
		return 0, component.StateIdle
	}
	// Dead and Hurt zero velocity unconditionally, Attack suppresses
	// movement for the whole swing.
	if c.Dead || c.State == component.StateDead || c.State == component.StateHurt {
		return 0, c.State
	}
	if c.Attacking {
		return 0, c.State
	}
	if intent.MoveX == 0 {
		return 0, component.StateIdle
	}

	speed := c.WalkSpeed
	state = component.StateWalk
	if intent.Run {
		speed = c.RunSpeed
		state = component.StateRun
	}
	vx = float64(intent.MoveX) * speed

	// reject movement that would cross the boundary on the requested side
	next := x + vx*dt
	if (intent.MoveX < 0 && next < b.Left) || (intent.MoveX > 0 && next > b.Right) {
		return 0, component.StateIdle
	}

	wantLeft := intent.MoveX < 0
	if c.FacingLeft != wantLeft {
		c.FacingLeft = wantLeft
	}
	return vx, state
}

// Movement applies each character's intent through ResolveMovement, writes
// the resulting velocity to the physics body (or integrates the transform
// directly when no body exists), and drives the Idle/Walk/Run states.
type Movement struct {
	Dt float64
}

func NewMovement(dt float64) *Movement {
	return &Movement{Dt: dt}
}

func (s *Movement) Update(w *ecs.World) {
	ecs.ForEach3(w,
		component.CharacterComponent.Kind(),
		component.IntentComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, c *component.Character, intent *component.Intent, t *component.Transform) {
			// no boundary component means unconstrained movement
			bounds := component.Boundary{Left: math.Inf(-1), Right: math.Inf(1)}
			if b, ok := ecs.Get(w, e, component.BoundaryComponent.Kind()); ok {
				bounds = *b
			}

			vx, state := ResolveMovement(c, *intent, t.X, bounds, s.Dt)

			if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
				vel := pb.Body.Velocity()
				pb.Body.SetVelocityVector(cp.Vector{X: vx, Y: vel.Y})
			} else {
				t.X += vx * s.Dt
			}

			if state == component.StateIdle || state == component.StateWalk || state == component.StateRun {
				prev := c.State
				if c.SetState(state) {
					w.Events().Push(ecs.Event{
						Type: ecs.EventStateChanged,
						Data: ecs.StateChangeEvent{Entity: e, From: prev, To: c.State},
					})
				}
			}
		})
}
