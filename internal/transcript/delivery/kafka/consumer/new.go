package consumer

import (
	"fmt"

	"repurpose-srv/config"
	"repurpose-srv/internal/transcript"
	pkgKafka "repurpose-srv/pkg/kafka"
	"repurpose-srv/pkg/log"
)

// Config holds the configuration for the transcript consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     transcript.UseCase
}

// Consumer manages the Kafka consumer group for transcript prefetching
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          transcript.UseCase

	// Consumer group for transcript fetch requests
	prefetchGroup pkgKafka.IConsumer
}

// New creates a new transcript consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.KafkaConfig.TranscriptTopic == "" {
		return nil, fmt.Errorf("transcript topic is required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.prefetchGroup != nil {
		if err := c.prefetchGroup.Close(); err != nil {
			return fmt.Errorf("failed to close prefetch group: %w", err)
		}
	}

	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
