package http

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeProfileRequest(c *gin.Context) (analyzeProfileReq, model.Scope, error) {
	var req analyzeProfileReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.processAnalyzeProfileRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidRequestBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetProfileReportRequest(c *gin.Context) (getProfileReportReq, model.Scope, error) {
	req := getProfileReportReq{
		Username: c.Param("username"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
