package broker

import (
	"context"
	"log/slog"

	"negociosHorarios/internal/modules/realtime/domain"
	"negociosHorarios/internal/modules/realtime/infrastructure"
)

// StartKafkaConsumers starts one consumer goroutine per registered topic. It is a no-op without
// brokers so local runs work without Kafka.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
) {
	if len(brokers) == 0 {
		slog.Warn("kafka brokers not configured; inbound events disabled")
		return
	}
	for _, topic := range registry.Topics() {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			slog.Info("kafka consumer started", slog.String("topic", tp), slog.String("group", groupID))
			err := consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, msg)
			})
			slog.Info("kafka consumer stopped", slog.String("topic", tp), slog.Any("reason", err))
		}(topic)
	}
}
