package eventbus

import (
	"context"
	"log/slog"
	"sync"
)

// Handler consumes a published payload. Handlers own their failures; a
// handler must not assume anyone upstream sees its outcome.
type Handler func(ctx context.Context, payload []byte)

// Bus is an in-process, topic-addressed publish/subscribe channel. Delivery
// is best-effort and at-most-once per publish: nothing is persisted, and a
// payload published with no subscribers is dropped.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
}

func New() *Bus {
	return &Bus{
		subs: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for a topic. Subscriptions are expected to
// happen during startup, before traffic; there is no unsubscribe.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], h)
}

// Publish fans the payload out to every handler on the topic and returns
// immediately. Each handler runs on its own goroutine; a panicking handler
// is recovered and logged, and never affects the publisher or the other
// handlers.
func (b *Bus) Publish(ctx context.Context, topic string, payload []byte) {
	b.mu.RLock()
	handlers := b.subs[topic]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		slog.WarnContext(ctx, "[eventBus] Publish", "noSubscribers", topic)
		return
	}

	for _, h := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					slog.ErrorContext(ctx, "[eventBus] Publish", "topic", topic, "handlerPanic", r)
				}
			}()
			h(ctx, payload)
		}(h)
	}
}
