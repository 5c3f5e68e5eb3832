package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"repurpose-srv/config"
	configKafka "repurpose-srv/config/kafka"
	configMinio "repurpose-srv/config/minio"
	configPostgre "repurpose-srv/config/postgre"
	configRedis "repurpose-srv/config/redis"
	_ "repurpose-srv/docs" // Import swagger docs
	"repurpose-srv/internal/httpserver"
	"repurpose-srv/pkg/apify"
	"repurpose-srv/pkg/discord"
	"repurpose-srv/pkg/email"
	"repurpose-srv/pkg/encrypter"
	pkgJWT "repurpose-srv/pkg/jwt"
	"repurpose-srv/pkg/log"
	"repurpose-srv/pkg/openai"
	"repurpose-srv/pkg/supadata"
)

// @title       Repurpose Service API
// @description Dashboard backend for repurposing Instagram reels.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Session token issued by /authentication/verify. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 5. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 8. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 9. Initialize Kafka producer for transcript prefetch events
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka.Brokers, cfg.Kafka.TranscriptTopic)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return
	}
	defer configKafka.DisconnectProducers()
	logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.TranscriptTopic)

	// 10. Initialize provider clients
	apifyClient, err := apify.NewApify(apify.ApifyConfig{APIKey: cfg.Apify.APIKey})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Apify client: ", err)
		return
	}

	supadataClient, err := supadata.NewSupadata(supadata.SupadataConfig{APIKey: cfg.Supadata.APIKey})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Supadata client: ", err)
		return
	}

	openaiClient, err := openai.NewOpenAI(openai.OpenAIConfig{APIKey: cfg.OpenAI.APIKey})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	emailSender, err := email.NewSMTPSender(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize SMTP sender: ", err)
		return
	}
	logger.Info(ctx, "Provider clients initialized")

	// 11. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 12. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:         logger,
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,

		// Infrastructure clients
		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		MinIOBucket:   cfg.MinIO.Bucket,

		// Provider clients
		ApifyClient:    apifyClient,
		SupadataClient: supadataClient,
		OpenAIClient:   openaiClient,
		EmailSender:    emailSender,

		// Authentication & Security Configuration
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
