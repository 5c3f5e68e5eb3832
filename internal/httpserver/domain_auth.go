package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "repurpose-srv/internal/auth/delivery/http"
	authPostgres "repurpose-srv/internal/auth/repository/postgres"
	authRedis "repurpose-srv/internal/auth/repository/redis"
	authUsecase "repurpose-srv/internal/auth/usecase"
	"repurpose-srv/internal/middleware"
)

func (srv *HTTPServer) setupAuthDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	userRepo := authPostgres.New(srv.postgresDB, srv.l)
	otpRepo := authRedis.New(srv.redisClient, srv.l)

	uc := authUsecase.New(srv.l, userRepo, otpRepo, srv.emailSender, srv.jwtManager, srv.encrypter)

	handler := authHTTP.New(srv.l, uc, srv.discord, srv.cookieConfig)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
