package http

import (
	"repurpose-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/analytics")
	api.Use(mw.Auth())
	{
		api.POST("/profile", h.AnalyzeProfile)
		api.GET("/profile/:username", h.GetProfileReport)
	}
}
