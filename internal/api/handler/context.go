package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-api/internal/core/domain"
)

// currentUser extracts the identity resolved by the Auth middleware. The gate
// is strict: a handler runs with a fully resolved user or not at all, so a
// missing user here means the route was wired without the middleware.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Access denied")
	}
	return user, nil
}
