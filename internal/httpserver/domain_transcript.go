package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authPostgres "repurpose-srv/internal/auth/repository/postgres"
	"repurpose-srv/internal/middleware"
	transcriptHTTP "repurpose-srv/internal/transcript/delivery/http"
	transcriptPostgres "repurpose-srv/internal/transcript/repository/postgres"
	transcriptRedis "repurpose-srv/internal/transcript/repository/redis"
	transcriptUsecase "repurpose-srv/internal/transcript/usecase"
)

func (srv *HTTPServer) setupTranscriptDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cacheRepo := transcriptRedis.New(srv.redisClient, srv.l)
	repo := transcriptPostgres.New(srv.postgresDB, srv.l)
	userRepo := authPostgres.New(srv.postgresDB, srv.l)

	uc := transcriptUsecase.New(srv.l, srv.supadataClient, cacheRepo, repo, userRepo, srv.encrypter)

	handler := transcriptHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Transcript domain registered")
	return nil
}
