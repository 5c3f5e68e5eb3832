package http

import (
	"repurpose-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Fetch a reel transcript
// @Description Return the transcript for a reel URL. Answers 202 with a job id when the provider defers the work.
// @Tags Transcript
// @Produce json
// @Param url query string true "Reel URL"
// @Success 200 {object} transcriptResp
// @Success 202 {object} asyncJobResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/transcripts [get]
func (h *handler) GetTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetTranscriptRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.GetTranscript: processGetTranscriptRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetTranscript(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.GetTranscript: usecase GetTranscript failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	if o.Async {
		response.Accepted(c, h.newAsyncJobResp(o))
		return
	}
	response.OK(c, h.newTranscriptResp(o))
}

// @Summary Poll an async transcript job
// @Description Return the current status of a deferred transcript job
// @Tags Transcript
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} jobStatusResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/transcripts/jobs/{job_id} [get]
func (h *handler) GetJobStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetJobStatusRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.GetJobStatus: processGetJobStatusRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetJobStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.GetJobStatus: usecase GetJobStatus failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newJobStatusResp(o))
}
