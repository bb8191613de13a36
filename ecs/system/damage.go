package system

import (
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// DealDamage runs the damage model against a target entity and emits the
// damage and state-change events on success. Targets without a character
// or health are not damageable.
func DealDamage(w *ecs.World, target ecs.Entity, amount int) bool {
	c, ok := ecs.Get(w, target, component.CharacterComponent.Kind())
	if !ok {
		return false
	}
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	prev := c.State
	if !component.ApplyDamage(c, h, amount) {
		return false
	}

	w.Events().Push(ecs.Event{
		Type: ecs.EventDamaged,
		Data: ecs.DamageEvent{Entity: target, Amount: amount},
	})
	w.Events().Push(ecs.Event{
		Type: ecs.EventStateChanged,
		Data: ecs.StateChangeEvent{Entity: target, From: prev, To: c.State},
	})
	return true
}
