package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authPostgres "repurpose-srv/internal/auth/repository/postgres"
	"repurpose-srv/internal/middleware"
	reelHTTP "repurpose-srv/internal/reel/delivery/http"
	reelPostgres "repurpose-srv/internal/reel/repository/postgres"
	reelUsecase "repurpose-srv/internal/reel/usecase"
)

func (srv *HTTPServer) setupReelDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reelPostgres.New(srv.postgresDB, srv.l)
	userRepo := authPostgres.New(srv.postgresDB, srv.l)

	uc := reelUsecase.New(srv.l, srv.apifyClient, repo, userRepo, srv.encrypter, srv.kafkaProducer)

	handler := reelHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Reel domain registered")
	return nil
}
