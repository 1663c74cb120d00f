package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burgerqueen/burger-queen-api/internal/api/metrics"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// AuthHandler handles POST /auth.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login authenticates a user and returns a bearer token.
// Responds 400 on missing fields, 404 on unknown email, 401 on a wrong
// password and 200 with {accessToken} on success.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}
