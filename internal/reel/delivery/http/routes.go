package http

import (
	"repurpose-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reels")
	api.Use(mw.Auth())
	{
		api.GET("/top", h.GetTopReels)
		api.GET("/metadata", h.GetReelMetadata)
		api.POST("/saved", h.SaveReel)
		api.GET("/saved", h.ListSavedReels)
		api.DELETE("/saved/:id", h.DeleteSavedReel)
	}
}
