package infrastructure

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"negociosHorarios/internal/modules/realtime/application/port"
	"negociosHorarios/internal/modules/realtime/domain"
)

// HandlerRegistry routes inbound broker messages to the handler registered for their topic.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string]port.TopicHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]port.TopicHandler)}
}

func (r *HandlerRegistry) Register(h port.TopicHandler) {
	topic := strings.TrimSpace(h.Topic())
	if topic == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[topic] = h
}

// Topics lists the registered topics, sorted, so consumers can be started for each of them.
func (r *HandlerRegistry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	topics := make([]string, 0, len(r.handlers))
	for topic := range r.handlers {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Dispatch hands msg to its handler; messages on unknown topics are dropped.
func (r *HandlerRegistry) Dispatch(ctx context.Context, msg *domain.Message) error {
	if msg == nil {
		return nil
	}
	r.mu.RLock()
	handler, ok := r.handlers[msg.Topic]
	r.mu.RUnlock()
	if !ok {
		slog.Debug("no handler for topic", slog.String("topic", msg.Topic))
		return nil
	}
	return handler.Handle(ctx, msg)
}
