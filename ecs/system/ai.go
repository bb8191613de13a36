package system

import (
	"math"
	"math/rand"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// AI drives NPC behavior: a selector over idle/wander/chase/attack that is
// re-evaluated every tick and writes movement intent for the shared
// movement resolver. Attack is the one action that bypasses intent: the
// NPC applies its damage directly when the swing starts rather than
// through the windowed hit-test the player uses.
type AI struct {
	Dt  float64
	Rng *rand.Rand

	scripts map[ecs.Entity]*aiScriptRuntime
}

func NewAI(dt float64, rng *rand.Rand) *AI {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &AI{Dt: dt, Rng: rng}
}

func (s *AI) Update(w *ecs.World) {
	player, playerOK := w.First(component.PlayerTagComponent.Kind())
	var playerX, playerY float64
	if playerOK {
		if pt, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			playerX, playerY = pt.X, pt.Y
		} else {
			playerOK = false
		}
	}

	ecs.ForEach4(w,
		component.AIComponent.Kind(),
		component.AIRuntimeComponent.Kind(),
		component.CharacterComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, ai *component.AI, rt *component.AIRuntime, c *component.Character, t *component.Transform) {
			if rt.CooldownLeft > 0 {
				rt.CooldownLeft -= s.Dt
			}
			intent, intentOK := ecs.Get(w, e, component.IntentComponent.Kind())
			if intentOK {
				intent.MoveX = 0
				intent.Run = false
			}

			if c.Dead || c.State == component.StateDead || c.State == component.StateHurt {
				return
			}

			// no target means infinite distance, which disables chase
			// and attack and leaves only the wander cycle
			dist := math.Inf(1)
			dir := 0
			if playerOK {
				dist = math.Hypot(playerX-t.X, playerY-t.Y)
				if playerX < t.X {
					dir = -1
				} else {
					dir = 1
				}
			}

			next, fromScript := s.selectFromScript(e, ai, rt, dist)
			if !fromScript {
				next = s.selectState(ai, rt, dist)
			}
			s.enterState(ai, rt, next)

			switch rt.State {
			case component.AIAttack:
				prev := c.State
				if c.SetState(component.StateAttack) {
					w.Events().Push(ecs.Event{
						Type: ecs.EventStateChanged,
						Data: ecs.StateChangeEvent{Entity: e, From: prev, To: c.State},
					})
					rt.CooldownLeft = ai.AttackCooldown
					if playerOK && dist <= ai.AttackRange {
						DealDamage(w, player, ai.AttackDamage)
					}
				}
			case component.AIChase:
				if intentOK {
					intent.MoveX = dir
				}
			case component.AIWander:
				if rt.MoveDir == 0 {
					rt.MoveDir = s.randomDir()
				}
				if b, ok := ecs.Get(w, e, component.BoundaryComponent.Kind()); ok {
					step := t.X + float64(rt.MoveDir)*c.WalkSpeed*s.Dt
					if !b.Contains(step) {
						rt.MoveDir = -rt.MoveDir
					}
				}
				if intentOK {
					intent.MoveX = rt.MoveDir
				}
			case component.AIIdle:
				// intent stays zero
			}
		})
}

// selectState is the built-in priority selector: attack beats chase beats
// the timed idle/wander cycle.
func (s *AI) selectState(ai *component.AI, rt *component.AIRuntime, dist float64) component.AIState {
	if dist <= ai.AttackRange && rt.CooldownLeft <= 0 {
		return component.AIAttack
	}
	if dist <= ai.DetectionRange {
		return component.AIChase
	}

	rt.StateTimer -= s.Dt
	if rt.StateTimer > 0 && (rt.State == component.AIIdle || rt.State == component.AIWander) {
		return rt.State
	}
	if rt.State == component.AIWander {
		return component.AIIdle
	}
	return component.AIWander
}

// enterState applies entry effects when the selector changes state: the
// idle/wander timer is redrawn from the configured range and wander picks
// its direction once, holding it until a boundary reversal.
func (s *AI) enterState(ai *component.AI, rt *component.AIRuntime, next component.AIState) {
	if next == rt.State && rt.StateTimer > 0 {
		return
	}
	entered := next != rt.State || rt.StateTimer <= 0
	rt.State = next
	if !entered {
		return
	}
	switch next {
	case component.AIIdle:
		rt.StateTimer = s.randomDuration(ai.IdleMin, ai.IdleMax)
	case component.AIWander:
		rt.StateTimer = s.randomDuration(ai.WanderMin, ai.WanderMax)
		rt.MoveDir = s.randomDir()
	default:
		rt.StateTimer = 0
	}
}

func (s *AI) randomDuration(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.Rng.Float64()*(max-min)
}

func (s *AI) randomDir() int {
	if s.Rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
