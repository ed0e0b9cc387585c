package broker

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// NewKafkaWriter builds a writer for one topic, keyed by message key so events of the same
// listing stay ordered on one partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
