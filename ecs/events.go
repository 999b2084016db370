package ecs

// EventType names a frame event.
type EventType string

const (
	EventJumpStateChanged  EventType = "jump_state_changed"
	EventStaminaChanged    EventType = "stamina_changed"
	EventCooldownStarted   EventType = "cooldown_started"
	EventCooldownCompleted EventType = "cooldown_completed"
	EventTargetMoved       EventType = "target_moved"
	EventHealthChanged     EventType = "health_changed"
	EventRespawned         EventType = "respawned"
)

// Event is a frame-scoped notification. Data carries the payload of the
// signal that produced it.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue collects events pushed during a frame. Later systems read
// what earlier systems pushed; the scheduler clears it after the frame.
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

// Of returns this frame's events of the given type, oldest first.
func (q *EventQueue) Of(typ EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
