package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burgerqueen/burger-queen-api/internal/api/middleware"
	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8,containsany=0123456789"`
	Roles    []string `json:"roles"`
}

type updateUserRequest struct {
	Email    string    `json:"email"    validate:"required,email"`
	Password string    `json:"password" validate:"required,min=8,containsany=0123456789"`
	Roles    *[]string `json:"roles"`
}

type deletedResponse struct {
	Message string `json:"message"`
}

func toCapabilities(roles []string) []domain.Capability {
	caps := make([]domain.Capability, 0, len(roles))
	for _, r := range roles {
		caps = append(caps, domain.Capability(r))
	}
	return caps
}

// List handles GET /users (admin only).
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:uid. The parameter is an id or an email.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /users (admin only).
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:        req.Email,
		Password:     req.Password,
		Capabilities: toCapabilities(req.Roles),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:uid (self or admin).
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Roles != nil {
		caps := toCapabilities(*req.Roles)
		in.Capabilities = &caps
	}

	user, err := h.service.Update(c.Request().Context(), middleware.CurrentUser(c), c.Param("uid"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:uid (self or admin).
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("uid")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "user deleted"})
}
