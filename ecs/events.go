package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventLootCollected = "loot_collected"

// LootCollected is the payload of EventLootCollected.
type LootCollected struct {
	Kind  string
	Value float64
}

// EventQueue is a simple FIFO queue. Producers push during their Update and
// consumers drain on their next Update, so events survive one frame boundary.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
