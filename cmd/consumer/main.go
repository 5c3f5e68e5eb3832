package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"repurpose-srv/config"
	configPostgre "repurpose-srv/config/postgre"
	configRedis "repurpose-srv/config/redis"
	"repurpose-srv/internal/consumer"
	"repurpose-srv/pkg/discord"
	"repurpose-srv/pkg/encrypter"
	"repurpose-srv/pkg/log"
	"repurpose-srv/pkg/supadata"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Repurpose Consumer Service...")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Supadata
	supadataClient, err := supadata.NewSupadata(supadata.SupadataConfig{APIKey: cfg.Supadata.APIKey})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Supadata client: %v", err)
		return
	}
	logger.Info(ctx, "Supadata client initialized")

	// Encrypter (decrypts per-user provider keys)
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:         logger,
		KafkaConfig:    cfg.Kafka,
		RedisClient:    redisClient,
		PostgresDB:     postgresDB,
		SupadataClient: supadataClient,
		Encrypter:      encrypterInstance,
		Discord:        discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
