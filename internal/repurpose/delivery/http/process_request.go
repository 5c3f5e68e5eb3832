package http

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, model.Scope, error) {
	var req generateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.processGenerateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidRequestBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListContentsRequest(c *gin.Context) (listContentsReq, model.Scope, error) {
	var req listContentsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req.PagQuery); err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.processListContentsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errInvalidRequestBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processTranslateRequest(c *gin.Context) (translateReq, model.Scope, error) {
	var req translateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.processTranslateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidRequestBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
