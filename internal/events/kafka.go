package events

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
	prefix string
}

// NewKafkaPublisher publishes each event type to the topic prefix+eventType,
// keyed by the partition key so one event's history stays ordered.
func NewKafkaPublisher(brokers []string, topicPrefix string, writeTimeout time.Duration) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           writeTimeout,
			AllowAutoTopicCreation: true,
		},
		prefix: topicPrefix,
	}, nil
}

func (p *KafkaPublisher) Topic(eventType string) string {
	return p.prefix + eventType
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.Topic(eventType),
		Key:   []byte(partitionKey),
		Value: payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
