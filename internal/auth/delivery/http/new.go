package http

import (
	"repurpose-srv/config"
	"repurpose-srv/internal/auth"
	"repurpose-srv/internal/middleware"
	"repurpose-srv/pkg/discord"
	"repurpose-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l         log.Logger
	uc        auth.UseCase
	discord   discord.IDiscord
	cookieCfg config.CookieConfig
}

// New - Factory
func New(l log.Logger, uc auth.UseCase, discord discord.IDiscord, cookieCfg config.CookieConfig) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		discord:   discord,
		cookieCfg: cookieCfg,
	}
}
