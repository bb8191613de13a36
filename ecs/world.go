package ecs

import (
	"github.com/pixl9/sidebrawl/ecs/component"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, system order, and the event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then flushes the event queue.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// First returns the first entity carrying the given component kind.
func (w *World) First(k component.Kind) (Entity, bool) {
	if w == nil || k == nil {
		return NilEntity, false
	}
	store, ok := w.stores[k.ID()]
	if !ok {
		return NilEntity, false
	}
	for _, id := range store.Entities() {
		e := makeEntity(id, w.entities.gens[id-1])
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return NilEntity, false
}

// Query returns all live entities carrying every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	// iterate the smallest store, probe the rest
	var base *SparseSet
	rest := make([]*SparseSet, 0, len(kinds)-1)
	for _, k := range kinds {
		store, ok := w.stores[k.ID()]
		if !ok || store.Len() == 0 {
			return nil
		}
		if base == nil || store.Len() < base.Len() {
			if base != nil {
				rest = append(rest, base)
			}
			base = store
		} else {
			rest = append(rest, store)
		}
	}

	out := make([]Entity, 0, base.Len())
next:
	for _, id := range base.Entities() {
		for _, store := range rest {
			if !store.Has(id) {
				continue next
			}
		}
		e := makeEntity(id, w.entities.gens[id-1])
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) store(id component.ComponentID) *SparseSet {
	store, ok := w.stores[id]
	if !ok {
		store = &SparseSet{}
		w.stores[id] = store
	}
	return store
}
