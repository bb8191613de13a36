package ecs

import (
	"github.com/pixl9/sidebrawl/ecs/component"
)

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity marks an entity dead and drops its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Add attaches (or replaces) a component on a live entity.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], value *T) error {
	if w == nil || !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(k.ID()).Set(e.id(), value)
	return nil
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return false
	}
	store, ok := w.stores[k.ID()]
	if !ok {
		return false
	}
	return store.Remove(e.id())
}

// Has reports whether an entity carries a component.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return false
	}
	store, ok := w.stores[k.ID()]
	return ok && store.Has(e.id())
}

// Get returns the component pointer for an entity, if present.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	store, ok := w.stores[k.ID()]
	if !ok {
		return nil, false
	}
	v := store.Get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// First returns the first live entity carrying the kind.
func First(w *World, k component.Kind) (Entity, bool) {
	if w == nil {
		return NilEntity, false
	}
	return w.First(k)
}

// ForEach visits every live entity carrying the kind.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	store, ok := w.stores[k.ID()]
	if !ok {
		return
	}
	// snapshot ids so fn may add/remove safely
	ids := append([]entityID(nil), store.Entities()...)
	for _, id := range ids {
		e := makeEntity(id, w.entities.gens[id-1])
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := store.Get(id).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits every live entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// ForEach4 visits every live entity carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}
