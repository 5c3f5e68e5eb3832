package httpserver

import (
	"context"
	"fmt"

	"repurpose-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	ctx := context.Background()
	root := srv.gin.Group("")

	if err := srv.setupAuthDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup auth domain: %w", err)
	}
	if err := srv.setupAnalyticsDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup analytics domain: %w", err)
	}
	if err := srv.setupReelDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup reel domain: %w", err)
	}
	if err := srv.setupTranscriptDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup transcript domain: %w", err)
	}
	if err := srv.setupRepurposeDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup repurpose domain: %w", err)
	}
	if err := srv.setupMediaDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup media domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment, srv.allowedOrigins)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
