package http

import (
	"errors"

	"repurpose-srv/internal/reel"
	pkgErrors "repurpose-srv/pkg/errors"
)

var (
	errInvalidRequestBody = pkgErrors.NewHTTPError(400, "Invalid request body")
	errProfileURLRequired = pkgErrors.NewHTTPError(400, "Profile URL is required")
	errReelURLRequired    = pkgErrors.NewHTTPError(400, "Reel URL is required")
	errInvalidProfileURL  = pkgErrors.NewHTTPError(400, "Could not extract username from profile URL")
	errReelNotFound       = pkgErrors.NewHTTPError(404, "Reel not found")
	errSavedReelNotFound  = pkgErrors.NewHTTPError(404, "Saved reel not found")
	errScrapeFailed       = pkgErrors.NewHTTPError(502, "Failed to fetch data from Instagram")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reel.ErrInvalidProfileURL):
		return errInvalidProfileURL
	case errors.Is(err, reel.ErrURLRequired):
		return errReelURLRequired
	case errors.Is(err, reel.ErrReelNotFound):
		return errReelNotFound
	case errors.Is(err, reel.ErrSavedReelNotFound):
		return errSavedReelNotFound
	case errors.Is(err, reel.ErrScrapeFailed):
		return errScrapeFailed
	default:
		panic(err)
	}
}
