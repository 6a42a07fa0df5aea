package ecs

// ContactEventKind identifies player contact transitions.
type ContactEventKind string

const (
	ContactLanded     ContactEventKind = "landed"
	ContactLeftGround ContactEventKind = "left_ground"
	ContactWall       ContactEventKind = "wall"
)

// ContactEvent is emitted when an entity's contact state changes.
type ContactEvent struct {
	Entity Entity
	Kind   ContactEventKind
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []ContactEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt ContactEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []ContactEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports how many events are waiting.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
