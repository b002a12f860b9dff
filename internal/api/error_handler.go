package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/export"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// The business-rule conflict carries the prior action in its message.
	var alt *domain.AlternationError
	if errors.As(err, &alt) {
		return http.StatusBadRequest, alt.Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrInvalidPINFormat),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, export.ErrUnknownFormat):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found or inactive"
	case errors.Is(err, domain.ErrInvalidPIN):
		return http.StatusUnauthorized, "invalid PIN"
	case errors.Is(err, domain.ErrAdminUnauthorized):
		return http.StatusUnauthorized, "admin token missing or invalid"
	case errors.Is(err, domain.ErrIPNotAllowed):
		return http.StatusForbidden, "access denied from outside the authorized environment"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
