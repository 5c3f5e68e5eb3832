package consumer

import (
	"repurpose-srv/internal/transcript"
	kafkaDelivery "repurpose-srv/internal/transcript/delivery/kafka"
)

// toPrefetchInput maps the Kafka message DTO to usecase input.
func toPrefetchInput(m kafkaDelivery.TranscriptFetchRequestedMessage) transcript.GetTranscriptInput {
	return transcript.GetTranscriptInput{
		URL: m.URL,
	}
}
