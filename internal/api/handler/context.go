package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the subject id injected by the Auth middleware. Its
// presence proves the guard ran; a missing id on a guarded route is a wiring
// bug surfaced as 401 rather than a panic.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("userID").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
