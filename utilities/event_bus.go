package utilities

import "sync"

// Event names published by the services.
const (
	EventEvaluationSaved = "evaluation_saved"
	EventProjectScored   = "project_scored"
)

type EventHandler func(interface{})

type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

// Publish runs handlers asynchronously.
func (eb *EventBus) Publish(event string, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if handlers, found := eb.handlers[event]; found {
		for _, handler := range handlers {
			go handler(data)
		}
	}
}

// PublishSync runs handlers in order on the caller's goroutine, used where
// the caller needs the side effects (score snapshot, history row) applied
// before responding.
func (eb *EventBus) PublishSync(event string, data interface{}) {
	eb.mu.RLock()
	handlers := append([]EventHandler(nil), eb.handlers[event]...)
	eb.mu.RUnlock()
	for _, handler := range handlers {
		handler(data)
	}
}

// Global instance
var GlobalEventBus = NewEventBus()
