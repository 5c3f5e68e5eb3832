package kafka

import (
	"fmt"
	"sync"

	"repurpose-srv/pkg/kafka"
)

var (
	producerMu        sync.RWMutex
	producerInstances = make(map[string]kafka.IProducer)
)

// ConnectProducer initializes a Kafka producer for the given topic using a
// per-topic singleton. Safe for concurrent use.
func ConnectProducer(brokers []string, topic string) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if instance, ok := producerInstances[topic]; ok {
		return instance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers: brokers,
		Topic:   topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producerInstances[topic] = client
	return client, nil
}

// GetProducer returns the singleton Kafka producer for a topic.
// Panics if the producer is not initialized. Call ConnectProducer() first.
func GetProducer(topic string) kafka.IProducer {
	producerMu.RLock()
	defer producerMu.RUnlock()

	instance, ok := producerInstances[topic]
	if !ok {
		panic("Kafka producer not initialized. Call ConnectProducer() first")
	}
	return instance
}

// ProducerHealthCheck checks every initialized producer.
func ProducerHealthCheck() error {
	producerMu.RLock()
	defer producerMu.RUnlock()

	if len(producerInstances) == 0 {
		return fmt.Errorf("no Kafka producer initialized")
	}
	for topic, instance := range producerInstances {
		if err := instance.HealthCheck(); err != nil {
			return fmt.Errorf("Kafka producer for topic %s unhealthy: %w", topic, err)
		}
	}
	return nil
}

// DisconnectProducers closes all Kafka producers and resets the singletons.
func DisconnectProducers() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	for topic, instance := range producerInstances {
		if err := instance.Close(); err != nil {
			return err
		}
		delete(producerInstances, topic)
	}
	return nil
}
