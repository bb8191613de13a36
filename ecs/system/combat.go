package system

import (
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// Combat resolves the player's timed attack window. An attack is a window,
// not an instant: the hit-test fires at the halfway frame of the attack
// clip, gated per swing by the character's DealtDamage flag. NPCs do not
// go through this system; their swings apply damage directly from the AI.
type Combat struct{}

func NewCombat() *Combat {
	return &Combat{}
}

func (s *Combat) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	for _, attacker := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.CharacterComponent.Kind(),
		component.TransformComponent.Kind(),
	) {
		c, _ := ecs.Get(w, attacker, component.CharacterComponent.Kind())
		t, _ := ecs.Get(w, attacker, component.TransformComponent.Kind())
		if c == nil || t == nil {
			continue
		}
		if !c.Attacking || c.DealtDamage {
			continue
		}
		if c.Frame != c.AttackWindowFrame() {
			continue
		}

		cx, cy := attackOrigin(w, attacker, c, t)
		for _, target := range pw.QueryCircle(cx, cy, c.AttackRadius) {
			if target == attacker {
				continue
			}
			if DealDamage(w, target, c.AttackDamage) {
				// the flag is stamped per hit, not before the loop, so
				// every target already in this tick's overlap set is hit
				c.DealtDamage = true
			}
		}
	}
}

// attackOrigin is the hit-test circle center: the attacker's body center
// pushed forward by the attack reach in the facing direction.
func attackOrigin(w *ecs.World, e ecs.Entity, c *component.Character, t *component.Transform) (float64, float64) {
	x, y := t.X, t.Y
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		pos := pb.Body.Position()
		x, y = pos.X, pos.Y
	}
	if c.FacingLeft {
		return x - c.AttackReach, y
	}
	return x + c.AttackReach, y
}
