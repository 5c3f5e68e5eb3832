package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"repurpose-srv/internal/model"
	kafkaDelivery "repurpose-srv/internal/transcript/delivery/kafka"
	"repurpose-srv/pkg/scope"
)

// handlePrefetchMessage receives message, normalizes scope + input, delegates to usecase (no business logic here).
func (c *Consumer) handlePrefetchMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "transcript.delivery.kafka.consumer.handlePrefetchMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message kafkaDelivery.TranscriptFetchRequestedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "transcript.delivery.kafka.consumer.handlePrefetchMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	// 2. Validate message (format only; business rules stay in usecase)
	if message.URL == "" {
		c.l.Warnf(ctx, "transcript.delivery.kafka.consumer.handlePrefetchMessage: Invalid message: missing url (skipping)")
		return nil
	}

	// 3. Map to usecase input (presenter)
	input := toPrefetchInput(message)

	// 4. Create scope from the publishing user and set to context
	sc := model.Scope{
		UserID: message.UserID,
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	// 5. Call UseCase (scope already in context)
	if err := c.uc.Prefetch(ctx, sc, input); err != nil {
		c.l.Errorf(ctx, "transcript.delivery.kafka.consumer.handlePrefetchMessage: usecase Prefetch failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "transcript.delivery.kafka.consumer.handlePrefetchMessage: Successfully prefetched transcript for %s", message.URL)
	return nil
}
