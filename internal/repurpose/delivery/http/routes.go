package http

import (
	"repurpose-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/repurpose")
	api.Use(mw.Auth())
	{
		api.POST("", h.Generate)
		api.GET("", h.ListContents)
		api.POST("/translate", h.Translate)
	}
}
