package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AlexMorrow239/zomma-prototype/internal/api/handler"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Details    any    `json:"details,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope with request metadata so clients and
//     log pipelines can correlate failures.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg, code, details := resolveError(err, log, c, production)

		resp := errorResponse{
			StatusCode: status,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Path:       c.Request().RequestURI,
			Method:     c.Request().Method,
			Message:    msg,
			Code:       code,
			Details:    details,
			RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, production bool) (status int, msg, code string, details any) {
	// Validation failures join the per-field messages into the top-level
	// message and carry the field map as details.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error(), "", ve.Fields
	}

	// Weak passwords report every failed rule.
	var pe *domain.PasswordPolicyError
	if errors.As(err, &pe) {
		return http.StatusBadRequest, "password does not meet the security requirements", "", pe.Failures
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), "", nil
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingProspectName):
		return http.StatusBadRequest, err.Error(), "", nil
	case errors.Is(err, domain.ErrSamePassword):
		return http.StatusBadRequest, err.Error(), "", nil
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "token has expired", "TOKEN_EXPIRED", nil
	case errors.Is(err, domain.ErrUnknownEmail),
		errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized, err.Error(), "", nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", "", nil
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", "", nil
	case errors.Is(err, domain.ErrProspectNotFound):
		return http.StatusNotFound, "prospect not found", "", nil
	case errors.Is(err, domain.ErrRecipientNotFound):
		return http.StatusNotFound, "recipient not found", "", nil
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "an account with this email already exists", "", nil
	case errors.Is(err, domain.ErrRecipientExists):
		return http.StatusConflict, "a recipient with this email already exists", "", nil
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, err.Error(), "", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if production {
		return http.StatusInternalServerError, "internal server error", "", nil
	}
	return http.StatusInternalServerError, err.Error(), "", nil
}
