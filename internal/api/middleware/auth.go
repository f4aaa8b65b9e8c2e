package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-api/internal/core/ports"
)

// Auth is the authentication gate for protected routes. It extracts the
// bearer token, verifies it, resolves the identity against the credential
// store, and injects the resolved user into the request context. A request
// either carries a fully resolved identity or is rejected before any handler
// runs.
func Auth(signer ports.TokenSigner, users ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied")
			}

			userID, err := signer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid token")
			}

			// The token may outlive its identity; reject tokens whose user
			// no longer resolves to a live record.
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("user", user)

			return next(c)
		}
	}
}
