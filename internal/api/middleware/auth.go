package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moviebag/movie-bag/internal/core/token"
)

// UserIDKey is the echo context key under which Auth stores the verified
// subject id.
const UserIDKey = "user_id"

// Auth is the pipeline stage that turns a bearer token into an
// authenticated request. It accepts only session-purpose tokens; a
// password-reset token presented here is rejected like any other invalid
// token. On success the subject id is injected into the context for
// downstream handlers.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1], token.PurposeSession)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserIDKey, claims.Subject)
			return next(c)
		}
	}
}
