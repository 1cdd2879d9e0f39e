package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StrictBinder decodes JSON bodies rejecting unknown fields. The portal is
// deliberately strict here: silently accepted extra fields hide client bugs.
type StrictBinder struct{}

// Bind satisfies the echo.Binder interface for JSON payloads.
func (StrictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "request body is required")
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(i); err != nil {
		var ute *json.UnmarshalTypeError
		switch {
		case errors.As(err, &ute):
			return echo.NewHTTPError(http.StatusBadRequest, ute.Field+" has an invalid type")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return echo.NewHTTPError(http.StatusBadRequest, "unknown field "+field)
		case errors.Is(err, io.EOF):
			return echo.NewHTTPError(http.StatusBadRequest, "request body is required")
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
	}
	return nil
}
