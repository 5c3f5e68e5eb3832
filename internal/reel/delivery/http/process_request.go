package http

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetTopReelsRequest(c *gin.Context) (getTopReelsReq, model.Scope, error) {
	req := getTopReelsReq{
		URL: c.Query("url"),
	}
	if req.URL == "" {
		return req, model.Scope{}, errProfileURLRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetReelMetadataRequest(c *gin.Context) (getReelMetadataReq, model.Scope, error) {
	req := getReelMetadataReq{
		URL: c.Query("url"),
	}
	if req.URL == "" {
		return req, model.Scope{}, errReelURLRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processSaveReelRequest(c *gin.Context) (saveReelReq, model.Scope, error) {
	var req saveReelReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.processSaveReelRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errInvalidRequestBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListSavedReelsRequest(c *gin.Context) (listSavedReelsReq, model.Scope, error) {
	var req listSavedReelsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req.PagQuery); err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.processListSavedReelsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errInvalidRequestBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDeleteSavedReelRequest(c *gin.Context) (deleteSavedReelReq, model.Scope, error) {
	req := deleteSavedReelReq{
		ID: c.Param("id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
