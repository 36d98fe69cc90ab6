package events

import (
	"fmt"
	"sync"

	console "ruyatech/internal/utils/logger"
)

var log = console.New("EVENTS")

// Handler receives the payload of one emitted event.
type Handler func(interface{})

// Bus is the in-process audit trail for moderation activity. Sessions and
// controllers emit "<entity>.<action>" topics; subscribers log or count
// them. Handlers run detached and must not assume ordering.
type Bus struct {
	handlers map[string][]Handler
	mu       sync.RWMutex
}

var defaultBus = NewBus()

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

// On registers a handler for a topic.
func (bus *Bus) On(topic string, handler Handler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[topic] = append(bus.handlers[topic], handler)
}

// Emit triggers a topic with the given payload. A panicking handler is
// logged and does not take the emitter down.
func (bus *Bus) Emit(topic string, payload interface{}) {
	bus.mu.RLock()
	handlers, exists := bus.handlers[topic]
	bus.mu.RUnlock()

	if !exists {
		return
	}

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					_ = log.Error("panic in event handler for %s", fmt.Errorf("panic: %v", r), topic)
				}
			}()
			h(payload)
		}(handler)
	}
}

// On registers a handler on the default bus.
func On(topic string, handler Handler) {
	defaultBus.On(topic, handler)
}

// Emit publishes on the default bus.
func Emit(topic string, payload interface{}) {
	defaultBus.Emit(topic, payload)
}
