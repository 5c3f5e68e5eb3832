package http

import (
	"errors"

	"repurpose-srv/internal/media"
	pkgErrors "repurpose-srv/pkg/errors"
)

var (
	errImageURLRequired = pkgErrors.NewHTTPError(400, "Image URL parameter is required")
	errImageFetchFailed = pkgErrors.NewHTTPError(502, "Failed to fetch image")
	errImageStoreFailed = pkgErrors.NewHTTPError(502, "Failed to cache image")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, media.ErrURLRequired):
		return errImageURLRequired
	case errors.Is(err, media.ErrFetchFailed):
		return errImageFetchFailed
	case errors.Is(err, media.ErrStoreFailed):
		return errImageStoreFailed
	default:
		panic(err)
	}
}
