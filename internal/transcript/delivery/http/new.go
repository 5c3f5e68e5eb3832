package http

import (
	"repurpose-srv/internal/middleware"
	"repurpose-srv/internal/transcript"
	"repurpose-srv/pkg/discord"
	"repurpose-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      transcript.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc transcript.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
