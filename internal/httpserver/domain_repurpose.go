package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"repurpose-srv/internal/middleware"
	repurposeHTTP "repurpose-srv/internal/repurpose/delivery/http"
	repurposePostgres "repurpose-srv/internal/repurpose/repository/postgres"
	repurposeUsecase "repurpose-srv/internal/repurpose/usecase"
)

func (srv *HTTPServer) setupRepurposeDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := repurposePostgres.New(srv.postgresDB, srv.l)

	uc := repurposeUsecase.New(srv.l, srv.openaiClient, repo)

	handler := repurposeHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Repurpose domain registered")
	return nil
}
