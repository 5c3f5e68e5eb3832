package http

import (
	"errors"

	"repurpose-srv/internal/repurpose"
	pkgErrors "repurpose-srv/pkg/errors"
)

var (
	errInvalidRequestBody = pkgErrors.NewHTTPError(400, "Invalid request body")
	errMissingFields      = pkgErrors.NewHTTPError(400, "Missing required fields")
	errUnknownPlatform    = pkgErrors.NewHTTPError(400, "Unknown target platform")
	errTextRequired       = pkgErrors.NewHTTPError(400, "Text and target language are required")
	errGenerationFailed   = pkgErrors.NewHTTPError(502, "Failed to repurpose content")
	errTranslationFailed  = pkgErrors.NewHTTPError(502, "Failed to translate text")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, repurpose.ErrMissingFields):
		return errMissingFields
	case errors.Is(err, repurpose.ErrUnknownPlatform):
		return errUnknownPlatform
	case errors.Is(err, repurpose.ErrTextRequired):
		return errTextRequired
	case errors.Is(err, repurpose.ErrGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, repurpose.ErrTranslationFailed):
		return errTranslationFailed
	default:
		panic(err)
	}
}
