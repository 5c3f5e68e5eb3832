package http

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processProxyImageRequest(c *gin.Context) (proxyImageReq, model.Scope, error) {
	req := proxyImageReq{
		URL: c.Query("url"),
	}
	if req.URL == "" {
		return req, model.Scope{}, errImageURLRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
