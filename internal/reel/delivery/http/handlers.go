package http

import (
	"repurpose-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List a profile's top reels
// @Description Scrape the profile's recent posts and return the strongest reels by engagement
// @Tags Reel
// @Produce json
// @Param url query string true "Instagram profile URL"
// @Success 200 {object} topReelsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reels/top [get]
func (h *handler) GetTopReels(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetTopReelsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.GetTopReels: processGetTopReelsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetTopReels(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.GetTopReels: usecase GetTopReels failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTopReelsResp(o))
}

// @Summary Get single reel metadata
// @Description Scrape one reel URL and return its metadata
// @Tags Reel
// @Produce json
// @Param url query string true "Instagram reel URL"
// @Success 200 {object} model.Reel
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reels/metadata [get]
func (h *handler) GetReelMetadata(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetReelMetadataRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.GetReelMetadata: processGetReelMetadataRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetReelMetadata(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.GetReelMetadata: usecase GetReelMetadata failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Save a reel
// @Description Bookmark a reel with an optional transcript snapshot
// @Tags Reel
// @Accept json
// @Produce json
// @Param body body saveReelReq true "Reel to save"
// @Success 200 {object} savedReelResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reels/saved [post]
func (h *handler) SaveReel(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSaveReelRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.SaveReel: processSaveReelRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SaveReel(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.SaveReel: usecase SaveReel failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSavedReelResp(o))
}

// @Summary List saved reels
// @Description Return the user's bookmarked reels, newest first
// @Tags Reel
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listSavedReelsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reels/saved [get]
func (h *handler) ListSavedReels(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListSavedReelsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.ListSavedReels: processListSavedReelsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListSavedReels(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.ListSavedReels: usecase ListSavedReels failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListSavedReelsResp(o))
}

// @Summary Delete a saved reel
// @Description Remove one of the user's bookmarks
// @Tags Reel
// @Produce json
// @Param id path string true "Saved reel ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reels/saved/{id} [delete]
func (h *handler) DeleteSavedReel(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDeleteSavedReelRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.DeleteSavedReel: processDeleteSavedReelRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.DeleteSavedReel(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "reel.delivery.http.DeleteSavedReel: usecase DeleteSavedReel failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, deleteSavedReelResp{Message: "Saved reel deleted"})
}
