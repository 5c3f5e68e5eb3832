package http

import (
	"errors"

	"repurpose-srv/internal/auth"
	pkgErrors "repurpose-srv/pkg/errors"
)

var (
	errInvalidRequestBody = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInvalidEmail       = pkgErrors.NewHTTPError(400, "Invalid email address")
	errCodeRequired       = pkgErrors.NewHTTPError(400, "Verification code is required")
	errInvalidCode        = pkgErrors.NewHTTPError(400, "Invalid or expired verification code")
	errUserNotFound       = pkgErrors.NewHTTPError(404, "User not found")
	errNoKeysProvided     = pkgErrors.NewHTTPError(400, "No API keys provided")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, auth.ErrCodeRequired):
		return errCodeRequired
	case errors.Is(err, auth.ErrInvalidCode):
		return errInvalidCode
	case errors.Is(err, auth.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, auth.ErrNoKeysProvided):
		return errNoKeysProvided
	default:
		panic(err)
	}
}
