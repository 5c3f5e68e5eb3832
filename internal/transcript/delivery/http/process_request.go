package http

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetTranscriptRequest(c *gin.Context) (getTranscriptReq, model.Scope, error) {
	req := getTranscriptReq{
		URL: c.Query("url"),
	}
	if req.URL == "" {
		return req, model.Scope{}, errURLRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetJobStatusRequest(c *gin.Context) (getJobStatusReq, model.Scope, error) {
	req := getJobStatusReq{
		JobID: c.Param("job_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
