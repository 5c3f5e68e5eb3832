package httpserver

import (
	"database/sql"
	"errors"

	"repurpose-srv/config"
	"repurpose-srv/pkg/apify"
	"repurpose-srv/pkg/discord"
	"repurpose-srv/pkg/email"
	"repurpose-srv/pkg/encrypter"
	pkgJWT "repurpose-srv/pkg/jwt"
	pkgKafka "repurpose-srv/pkg/kafka"
	"repurpose-srv/pkg/log"
	pkgMinio "repurpose-srv/pkg/minio"
	"repurpose-srv/pkg/openai"
	pkgRedis "repurpose-srv/pkg/redis"
	"repurpose-srv/pkg/supadata"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin            *gin.Engine
	l              log.Logger
	host           string
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	minioClient   pkgMinio.MinIO
	kafkaProducer pkgKafka.IProducer
	minioBucket   string

	// Provider clients
	apifyClient    apify.IApify
	supadataClient supadata.ISupadata
	openaiClient   openai.IOpenAI
	emailSender    email.ISender

	// Authentication & Security Configuration
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger         log.Logger
	Host           string
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Infrastructure clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	MinIOClient   pkgMinio.MinIO
	KafkaProducer pkgKafka.IProducer
	MinIOBucket   string

	// Provider clients
	ApifyClient    apify.IApify
	SupadataClient supadata.ISupadata
	OpenAIClient   openai.IOpenAI
	EmailSender    email.ISender

	// Authentication & Security Configuration
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:              logger,
		gin:            gin.New(),
		host:           cfg.Host,
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,

		// Infrastructure clients
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		minioBucket:   cfg.MinIOBucket,

		// Provider clients
		apifyClient:    cfg.ApifyClient,
		supadataClient: cfg.SupadataClient,
		openaiClient:   cfg.OpenAIClient,
		emailSender:    cfg.EmailSender,

		// Authentication & Security Configuration
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}
	if srv.minioBucket == "" {
		return errors.New("minioBucket is required")
	}

	// Provider clients
	if srv.apifyClient == nil {
		return errors.New("apifyClient is required")
	}
	if srv.supadataClient == nil {
		return errors.New("supadataClient is required")
	}
	if srv.openaiClient == nil {
		return errors.New("openaiClient is required")
	}
	if srv.emailSender == nil {
		return errors.New("emailSender is required")
	}

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Monitoring & Notification Configuration (optional)
	// discord may be nil when no webhook is configured

	return nil
}
