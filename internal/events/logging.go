package events

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

// LoggingPublisher stands in for Kafka when no brokers are configured.
type LoggingPublisher struct {
	logger logger.Logger
}

func NewLoggingPublisher(logger logger.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error {
	p.logger.LogAttrs(ctx, logger.InfoLevel, "event published",
		logger.String("event_type", eventType),
		logger.String("partition_key", partitionKey),
		logger.Int("payload_bytes", len(payload)),
	)
	return nil
}

func (p *LoggingPublisher) Close() error { return nil }
