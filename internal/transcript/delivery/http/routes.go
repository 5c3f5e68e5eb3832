package http

import (
	"repurpose-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/transcripts")
	api.Use(mw.Auth())
	{
		api.GET("", h.GetTranscript)
		api.GET("/jobs/:job_id", h.GetJobStatus)
	}
}
