package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	mediaHTTP "repurpose-srv/internal/media/delivery/http"
	mediaUsecase "repurpose-srv/internal/media/usecase"
	"repurpose-srv/internal/middleware"
	pkgHTTP "repurpose-srv/pkg/http"
)

func (srv *HTTPServer) setupMediaDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	httpClient := pkgHTTP.NewClient(pkgHTTP.DefaultConfig())

	uc := mediaUsecase.New(srv.l, httpClient, srv.minioClient, srv.minioBucket)

	handler := mediaHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Media domain registered")
	return nil
}
