package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// statusClientClosedRequest is the nginx convention for a request the client
// abandoned; used when a newer product-detail fetch supersedes this one.
const statusClientClosedRequest = 499

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// When redirectOnAuthError is set, upstream 401/403 failures redirect the
// client to /error/unauthorized instead. Off by default, matching the
// observed permissive behavior.
func NewHTTPErrorHandler(log zerolog.Logger, redirectOnAuthError bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if redirectOnAuthError &&
			(errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden)) {
			_ = c.Redirect(http.StatusFound, "/error/unauthorized")
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

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domain.ErrNoTokenInResponse):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "upstream request failed"
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, "request superseded"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
