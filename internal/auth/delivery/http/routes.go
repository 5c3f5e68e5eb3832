package http

import (
	"repurpose-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	public := r.Group("/authentication")
	{
		public.POST("/code", h.RequestCode)
		public.POST("/verify", h.VerifyCode)
	}

	private := r.Group("/authentication")
	private.Use(mw.Auth())
	{
		private.GET("/me", h.Me)
		private.PUT("/keys", h.UpdateKeys)
		private.POST("/logout", h.Logout)
	}
}
