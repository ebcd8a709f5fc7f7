package roster

import "reflect"

// EventBus decouples host systems by queueing typed events for deferred
// delivery. Publish enqueues; nothing reaches a handler until Dispatch
// drains the queue in FIFO order. Handlers may publish follow-up events
// during a drain and those are delivered in the same drain.
type EventBus struct {
	eventTypes map[reflect.Type]int
	handlers   [][]any
	pending    []func(*EventBus)
}

func newEventBus() *EventBus {
	return &EventBus{
		eventTypes: make(map[reflect.Type]int),
	}
}

// Subscribe registers a handler for events of type E, called in subscription
// order on each delivery.
func Subscribe[E any](bus *EventBus, handler func(E)) {
	id := bus.eventTypeID(reflect.TypeFor[E]())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish enqueues an event of type E. Events without subscribers are
// silently dropped at dispatch time.
func Publish[E any](bus *EventBus, event E) {
	bus.pending = append(bus.pending, func(b *EventBus) {
		id, ok := b.eventTypes[reflect.TypeFor[E]()]
		if !ok {
			return
		}
		for _, h := range b.handlers[id] {
			h.(func(E))(event)
		}
	})
}

// Dispatch drains the pending queue, invoking every matching handler.
func (bus *EventBus) Dispatch() {
	for len(bus.pending) > 0 {
		next := bus.pending[0]
		bus.pending = bus.pending[1:]
		next(bus)
	}
}

// Pending returns the number of undelivered events.
func (bus *EventBus) Pending() int {
	return len(bus.pending)
}

func (bus *EventBus) eventTypeID(t reflect.Type) int {
	if id, ok := bus.eventTypes[t]; ok {
		return id
	}
	id := len(bus.handlers)
	bus.eventTypes[t] = id
	bus.handlers = append(bus.handlers, nil)
	return id
}
