package ecs

import (
	"testing"

	"github.com/pixl9/sidebrawl/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func TestNilEntityNeverResolves(t *testing.T) {
	w := NewWorld()
	if NilEntity.Valid() {
		t.Fatalf("the nil handle must not be valid")
	}
	if w.IsAlive(NilEntity) {
		t.Fatalf("the nil handle must not be alive")
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	if !DestroyEntity(w, first) {
		t.Fatalf("destroy failed")
	}
	second := CreateEntity(w)
	if first == second {
		t.Fatalf("generation should differ between reuses")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle should be dead")
	}
	if !IsAlive(w, second) {
		t.Fatalf("new handle should be alive")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 40, Max: 100}); err != nil {
		t.Fatalf("add: %v", err)
	}
	h, ok := Get(w, e, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("component should be present")
	}
	if h.Current != 40 {
		t.Fatalf("expected 40, got %d", h.Current)
	}

	h.Current = 10
	h2, _ := Get(w, e, component.HealthComponent.Kind())
	if h2.Current != 10 {
		t.Fatalf("Get should return a shared pointer")
	}

	if !Remove(w, e, component.HealthComponent.Kind()) {
		t.Fatalf("remove should succeed")
	}
	if Has(w, e, component.HealthComponent.Kind()) {
		t.Fatalf("component should be gone")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	DestroyEntity(w, e)

	if err := Add(w, e, component.HealthComponent.Kind(), &component.Health{}); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}

	e2 := CreateEntity(w)
	if err := Add[component.Health](w, e2, component.HealthComponent.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()

	both := CreateEntity(w)
	_ = Add(w, both, component.HealthComponent.Kind(), &component.Health{})
	_ = Add(w, both, component.TransformComponent.Kind(), &component.Transform{})

	onlyHealth := CreateEntity(w)
	_ = Add(w, onlyHealth, component.HealthComponent.Kind(), &component.Health{})

	got := w.Query(component.HealthComponent.Kind(), component.TransformComponent.Kind())
	if len(got) != 1 || got[0] != both {
		t.Fatalf("expected only the entity with both components, got %v", got)
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	_ = Add(w, e, component.HealthComponent.Kind(), &component.Health{})
	DestroyEntity(w, e)

	if _, ok := Get(w, e, component.HealthComponent.Kind()); ok {
		t.Fatalf("component should be dropped with the entity")
	}
	if got := w.Query(component.HealthComponent.Kind()); len(got) != 0 {
		t.Fatalf("query should skip destroyed entities, got %v", got)
	}
}

type recordingSystem struct {
	calls int
}

func (s *recordingSystem) Update(_ *World) { s.calls++ }

func TestUpdateRunsSystemsAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	sys := &recordingSystem{}
	w.AddSystem(sys)

	w.Events().Push(Event{Type: EventDamaged})
	w.Update()

	if sys.calls != 1 {
		t.Fatalf("system should run once, got %d", sys.calls)
	}
	if len(w.Events().Items()) != 0 {
		t.Fatalf("events should be flushed after update")
	}
}

func TestEventQueueItemsNonDestructive(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventDied})
	if len(q.Items()) != 1 || len(q.Items()) != 1 {
		t.Fatalf("Items must not consume the queue")
	}
	if got := q.Drain(); len(got) != 1 {
		t.Fatalf("Drain should return the pending events")
	}
	if len(q.Items()) != 0 {
		t.Fatalf("Drain should clear the queue")
	}
}
