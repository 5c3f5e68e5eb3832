package http

import (
	"errors"

	"repurpose-srv/internal/transcript"
	pkgErrors "repurpose-srv/pkg/errors"
)

var (
	errURLRequired         = pkgErrors.NewHTTPError(400, "Video URL is required")
	errJobIDRequired       = pkgErrors.NewHTTPError(400, "Job ID is required")
	errInvalidInput        = pkgErrors.NewHTTPError(400, "Video URL was rejected by the provider")
	errTranscriptNotFound  = pkgErrors.NewHTTPError(404, "No transcript available for this video")
	errRateLimited         = pkgErrors.NewHTTPError(429, "Transcript provider rate limit exceeded")
	errUpstreamUnavailable = pkgErrors.NewHTTPError(502, "Transcript provider unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transcript.ErrURLRequired):
		return errURLRequired
	case errors.Is(err, transcript.ErrJobIDRequired):
		return errJobIDRequired
	case errors.Is(err, transcript.ErrInvalidInput):
		return errInvalidInput
	case errors.Is(err, transcript.ErrNotFound):
		return errTranscriptNotFound
	case errors.Is(err, transcript.ErrRateLimited):
		return errRateLimited
	case errors.Is(err, transcript.ErrUpstreamUnavailable):
		return errUpstreamUnavailable
	default:
		panic(err)
	}
}
