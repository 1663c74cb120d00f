package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burgerqueen/burger-queen-api/internal/api/metrics"
)

// RequireAuth rejects anonymous requests with 401. It must run before any
// admin or ownership check so unauthenticated requests never reach
// resource-specific logic.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			metrics.AuthDenialsTotal.WithLabelValues("unauthorized").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return next(c)
	}
}

// RequireAdmin rejects requests whose identity lacks the admin capability.
// Anonymous requests get 401, authenticated non-admins get 403.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		if !CurrentUser(c).IsAdmin() {
			metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "admin capability required")
		}
		return next(c)
	})
}

// RequireSelfOrAdmin allows admins, or callers acting on their own account:
// the path parameter may be either the user's id or email, so both are
// matched against the bound identity.
func RequireSelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(func(c echo.Context) error {
			user := CurrentUser(c)
			key := c.Param(param)
			if user.IsAdmin() || key == user.ID || key == user.Email {
				return next(c)
			}
			metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "not the resource owner")
		})
	}
}
