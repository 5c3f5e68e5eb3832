package http

import (
	"repurpose-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the media routes. The proxy stays public: browsers
// load it from <img> tags that cannot attach an Authorization header.
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/media")
	{
		api.GET("/proxy", h.ProxyImage)
	}
}
