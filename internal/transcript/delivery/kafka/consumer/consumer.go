package consumer

import (
	"context"
)

// ConsumePrefetchRequests starts consuming transcript fetch requests
func (c *Consumer) ConsumePrefetchRequests(ctx context.Context) error {
	// Create consumer group
	group, err := c.createConsumerGroup(c.kafkaConfig.GroupID)
	if err != nil {
		return err
	}
	c.prefetchGroup = group

	// Create handler
	handler := &prefetchHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{c.kafkaConfig.TranscriptTopic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.kafkaConfig.TranscriptTopic)

	return nil
}
