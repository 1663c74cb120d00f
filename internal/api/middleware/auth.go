package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/burgerqueen/burger-queen-api/internal/api/metrics"
	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

const userContextKey = "user"

// Authenticate verifies the bearer credential and resolves it to a stored
// identity, which is bound to the request context for the gate and handlers.
//
// A missing Authorization header, or one with a non-bearer scheme, is not an
// error: the request proceeds anonymously and RequireAuth decides later.
// A present bearer token must verify (403 otherwise) and must reference an
// existing user (404 otherwise) before any handler runs.
func Authenticate(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthDenialsTotal.WithLabelValues("bad_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbiddenCredential.Error())
			}

			sub, _ := claims["sub"].(string)
			user, err := users.FindByKey(c.Request().Context(), sub)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthDenialsTotal.WithLabelValues("unknown_identity").Inc()
					return echo.NewHTTPError(http.StatusNotFound, "no user found for token")
				}
				return err
			}

			// The hash never leaves the resolver.
			user.PasswordHash = ""
			c.Set(userContextKey, user)

			return next(c)
		}
	}
}

// CurrentUser returns the identity bound by Authenticate, or nil for an
// anonymous request.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
