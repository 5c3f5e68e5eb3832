package http

import (
	"errors"

	"repurpose-srv/internal/analytics"
	pkgErrors "repurpose-srv/pkg/errors"
)

var (
	errInvalidRequestBody = pkgErrors.NewHTTPError(400, "Invalid request body")
	errUsernameRequired   = pkgErrors.NewHTTPError(400, "Username is required")
	errUserIDRequired     = pkgErrors.NewHTTPError(400, "User ID is required")
	errReportNotFound     = pkgErrors.NewHTTPError(404, "Analytics report not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrUsernameRequired):
		return errUsernameRequired
	case errors.Is(err, analytics.ErrUserIDRequired):
		return errUserIDRequired
	case errors.Is(err, analytics.ErrReportNotFound):
		return errReportNotFound
	default:
		panic(err)
	}
}
