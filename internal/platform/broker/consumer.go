package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"negociosHorarios/internal/modules/realtime/domain"
	"negociosHorarios/internal/shared/normalization"
)

const readRetryDelay = time.Second

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID string, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

// Consume reads until ctx is cancelled. Handler errors are logged and the message is committed
// anyway: a malformed event must not block the partition.
func (c *KafkaConsumer) Consume(ctx context.Context, handler func(*domain.Message) error) error {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(readRetryDelay):
			}
			continue
		}
		msg := decodeMessage(m)
		slog.Info("kafka message consumed",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("entity", msg.Entity),
			slog.String("action", msg.Action),
			slog.String("resourceId", msg.ResourceID),
		)
		if err := handler(msg); err != nil {
			slog.Warn("kafka handler error", slog.String("topic", m.Topic), slog.Int64("offset", m.Offset), slog.Any("error", err))
		}
	}
}

type rawEvent struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Metadata   map[string]string `json:"metadata"`
	Data       any               `json:"data"`
	Timestamp  *time.Time        `json:"timestamp"`
}

// decodeMessage keeps the Kafka topic as the routing key. Payloads that are not JSON are passed
// through as a string with entity and action inferred from the topic name.
func decodeMessage(m kafka.Message) *domain.Message {
	msg := &domain.Message{Topic: m.Topic, Timestamp: time.Now().UTC()}
	if !m.Time.IsZero() {
		msg.Timestamp = m.Time.UTC()
	}

	var event rawEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		msg.Entity, msg.Action = inferEntityActionFromTopic(m.Topic)
		msg.Data = string(m.Value)
		return msg
	}

	entity, _ := inferEntityActionFromTopic(m.Topic)
	msg.Entity = normalization.FirstNonEmpty(event.Entity, entity)
	msg.Action = normalization.FirstNonEmpty(event.Action, "unknown")
	msg.ResourceID = strings.TrimSpace(event.ResourceID)
	if msg.ResourceID == "" && len(m.Key) > 0 {
		msg.ResourceID = strings.TrimSpace(string(m.Key))
	}
	msg.Metadata = event.Metadata
	msg.Data = event.Data
	if event.Timestamp != nil && !event.Timestamp.IsZero() {
		msg.Timestamp = event.Timestamp.UTC()
	}
	return msg
}

func inferEntityActionFromTopic(topic string) (string, string) {
	parts := strings.Split(topic, ".")
	if len(parts) >= 2 {
		entity := strings.TrimSpace(parts[len(parts)-2])
		action := strings.TrimSpace(parts[len(parts)-1])
		if entity != "" && action != "" {
			return entity, action
		}
	}
	if entity := strings.TrimSpace(topic); entity != "" {
		return entity, "unknown"
	}
	return "", "unknown"
}
