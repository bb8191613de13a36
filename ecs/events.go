package ecs

import "github.com/pixl9/sidebrawl/ecs/component"

// EventType identifies a world event.
type EventType string

const (
	// EventStateChanged is pushed whenever a character's state changes.
	EventStateChanged EventType = "state_changed"
	// EventDamaged is pushed when a character takes damage.
	EventDamaged EventType = "damaged"
	// EventDied is pushed when a character latches Dead.
	EventDied EventType = "died"
)

// Event is a world event with a typed payload.
type Event struct {
	Type EventType
	Data any
}

// StateChangeEvent is the payload for EventStateChanged.
type StateChangeEvent struct {
	Entity Entity
	From   component.CharacterState
	To     component.CharacterState
}

// DamageEvent is the payload for EventDamaged.
type DamageEvent struct {
	Entity Entity
	Amount int
}

// DeathEvent is the payload for EventDied.
type DeathEvent struct {
	Entity Entity
}

// EventQueue is a per-tick FIFO. Systems push during their update and read
// with Items; the world flushes the queue after all systems ran.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the pending events without consuming them, so multiple
// systems may observe the same tick's events.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
