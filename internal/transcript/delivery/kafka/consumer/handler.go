package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type prefetchHandler struct {
	consumer *Consumer
}

func (h *prefetchHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *prefetchHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *prefetchHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handlePrefetchMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "transcript.delivery.kafka.consumer.ConsumePrefetchRequests: Failed to process prefetch message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
