package events

import (
	"reflect"
	"sync"
)

// EventBusImpl is a synchronous in-process event bus. Handlers are
// invoked on the publishing goroutine, in subscription order.
type EventBusImpl struct {
	mu       sync.RWMutex
	handlers map[reflect.Type][]func(any)
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBusImpl {
	return &EventBusImpl{
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Subscribe registers a handler for events of type E.
func Subscribe[E any](bus *EventBusImpl, handler func(E)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	t := reflect.TypeOf((*E)(nil)).Elem()
	bus.handlers[t] = append(bus.handlers[t], func(e any) {
		handler(e.(E))
	})
}

// Publish delivers the event to every subscriber of its type.
func Publish[E any](bus *EventBusImpl, event E) {
	bus.mu.RLock()
	t := reflect.TypeOf((*E)(nil)).Elem()
	handlers := make([]func(any), len(bus.handlers[t]))
	copy(handlers, bus.handlers[t])
	bus.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
