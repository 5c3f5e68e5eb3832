package http

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRequestCodeRequest(c *gin.Context) (requestCodeReq, error) {
	var req requestCodeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.processRequestCodeRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequestBody
	}
	return req, nil
}

func (h *handler) processVerifyCodeRequest(c *gin.Context) (verifyCodeReq, error) {
	var req verifyCodeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.processVerifyCodeRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequestBody
	}
	return req, nil
}

func (h *handler) processUpdateKeysRequest(c *gin.Context) (updateKeysReq, model.Scope, error) {
	var req updateKeysReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.processUpdateKeysRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidRequestBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processScopedRequest(c *gin.Context) model.Scope {
	return scope.GetScopeFromContext(c.Request.Context())
}
