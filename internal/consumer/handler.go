package consumer

import (
	"context"
	"fmt"

	authPostgres "repurpose-srv/internal/auth/repository/postgres"
	transcriptConsumer "repurpose-srv/internal/transcript/delivery/kafka/consumer"
	transcriptPostgres "repurpose-srv/internal/transcript/repository/postgres"
	transcriptRedis "repurpose-srv/internal/transcript/repository/redis"
	transcriptUsecase "repurpose-srv/internal/transcript/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	transcriptConsumer *transcriptConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Initialize transcript domain
	userRepo := authPostgres.New(srv.postgresDB, srv.l)
	cacheRepo := transcriptRedis.New(srv.redisClient, srv.l)
	postgresRepo := transcriptPostgres.New(srv.postgresDB, srv.l)
	transcriptUC := transcriptUsecase.New(
		srv.l,
		srv.supadataClient,
		cacheRepo,
		postgresRepo,
		userRepo,
		srv.encrypter,
	)
	transcriptCons, err := transcriptConsumer.New(transcriptConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     transcriptUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript consumer: %w", err)
	}

	srv.l.Infof(ctx, "Transcript domain initialized")

	return &domainConsumers{
		transcriptConsumer: transcriptCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	// Start transcript consumer
	if err := consumers.transcriptConsumer.ConsumePrefetchRequests(ctx); err != nil {
		return fmt.Errorf("failed to start transcript consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	// Close transcript consumer
	if consumers.transcriptConsumer != nil {
		if err := consumers.transcriptConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing transcript consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
