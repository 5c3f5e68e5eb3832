package http

import (
	"net/http"

	"repurpose-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Proxy a reel thumbnail
// @Description Cache a CDN thumbnail in object storage and redirect to a presigned URL
// @Tags Media
// @Param url query string true "Image URL"
// @Success 302
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/media/proxy [get]
func (h *handler) ProxyImage(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processProxyImageRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "media.delivery.http.ProxyImage: processProxyImageRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ProxyImage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "media.delivery.http.ProxyImage: usecase ProxyImage failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Redirect(http.StatusFound, o.RedirectURL)
}
