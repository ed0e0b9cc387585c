package port

import (
	"context"

	"negociosHorarios/internal/modules/realtime/domain"
)

// Broadcaster sends messages to websocket clients subscribed to the message topic.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// SubscriptionSource lists topics that currently have live subscribers.
type SubscriptionSource interface {
	ActiveTopics() []string
}

// TopicHandler handles inbound broker messages of one Kafka topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}
