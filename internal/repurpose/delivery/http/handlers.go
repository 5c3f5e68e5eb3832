package http

import (
	"repurpose-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Repurpose a reel
// @Description Rewrite a reel's transcript/caption for another platform, goal and tone
// @Tags Repurpose
// @Accept json
// @Produce json
// @Param body body generateReq true "Repurposing parameters"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/repurpose [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGenerateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.Generate: processGenerateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateResp(o))
}

// @Summary List repurposed content
// @Description List the caller's stored generated content, newest first
// @Tags Repurpose
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listContentsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/repurpose [get]
func (h *handler) ListContents(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListContentsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.ListContents: processListContentsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.ListContents: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListContentsResp(o))
}

// @Summary Translate text
// @Description Translate free text to a target language
// @Tags Repurpose
// @Accept json
// @Produce json
// @Param body body translateReq true "Text and target language"
// @Success 200 {object} translateResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/repurpose/translate [post]
func (h *handler) Translate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTranslateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.Translate: processTranslateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Translate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "repurpose.delivery.http.Translate: usecase Translate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTranslateResp(o))
}
