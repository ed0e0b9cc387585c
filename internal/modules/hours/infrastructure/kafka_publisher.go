package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"negociosHorarios/internal/modules/hours/application/port"
	realtime "negociosHorarios/internal/modules/realtime/domain"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaEventPublisher emits hours events in the same envelope the consumers read.
type KafkaEventPublisher struct {
	writer MessageWriter
}

func NewKafkaEventPublisher(writer MessageWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

type eventEnvelope struct {
	ID         string                 `json:"id"`
	Entity     string                 `json:"entity"`
	Action     string                 `json:"action"`
	ResourceID string                 `json:"resourceId"`
	Metadata   map[string]string      `json:"metadata,omitempty"`
	Data       port.HoursUpdatedEvent `json:"data"`
	Timestamp  string                 `json:"timestamp"`
}

func (p *KafkaEventPublisher) PublishHoursUpdated(ctx context.Context, event port.HoursUpdatedEvent) error {
	envelope := eventEnvelope{
		ID:         event.ID,
		Entity:     realtime.HoursEntity,
		Action:     realtime.ActionUpdated,
		ResourceID: event.ListingID,
		Metadata:   map[string]string{"actorId": event.ActorID},
		Data:       event,
		Timestamp:  event.OccurredAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode hours event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.ListingID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "event-type", Value: []byte(realtime.HoursEntity + "." + realtime.ActionUpdated)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish hours event %s: %w", event.ID, err)
	}
	slog.Debug("hours event published", slog.String("eventId", event.ID), slog.String("listingId", event.ListingID))
	return nil
}

var _ port.EventPublisher = (*KafkaEventPublisher)(nil)
