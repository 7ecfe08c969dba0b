package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviebag/movie-bag/internal/api/middleware"
)

// ctxUserID extracts the authenticated subject id injected by the Auth
// middleware. A missing id means the middleware did not run on this route;
// fail fast with 401 before any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
