package http

import (
	"repurpose-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze an Instagram profile
// @Description Run the full analytics pipeline over a batch of reels and return the profile report
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body analyzeProfileReq true "Profile analysis request"
// @Success 200 {object} analytics.Report
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analytics/profile [post]
func (h *handler) AnalyzeProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeProfileRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.AnalyzeProfile: processAnalyzeProfileRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.AnalyzeProfile: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// @Summary Get a cached profile report
// @Description Return the most recent cached analytics report for a profile
// @Tags Analytics
// @Produce json
// @Param username path string true "Instagram username"
// @Success 200 {object} analytics.Report
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analytics/profile/{username} [get]
func (h *handler) GetProfileReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetProfileReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetProfileReport: processGetProfileReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetCachedReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetProfileReport: usecase GetCachedReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}
