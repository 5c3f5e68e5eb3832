package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "repurpose-srv/internal/analytics/delivery/http"
	analyticsRedis "repurpose-srv/internal/analytics/repository/redis"
	analyticsUsecase "repurpose-srv/internal/analytics/usecase"
	"repurpose-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := analyticsRedis.New(srv.redisClient, srv.l)

	uc := analyticsUsecase.New(srv.l, repo)

	handler := analyticsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
