package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burgerqueen/burger-queen-api/internal/api/metrics"
	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	Qty     int            `json:"qty"`
	Product domain.Product `json:"product"`
}

type createOrderRequest struct {
	UserID   string             `json:"userId"`
	Client   string             `json:"client"`
	Products []orderItemRequest `json:"products"`
}

type updateOrderRequest struct {
	UserID   *string            `json:"userId"`
	Client   *string            `json:"client"`
	Products []orderItemRequest `json:"products"`
	Status   *string            `json:"status"`
}

func toItemInputs(items []orderItemRequest) []ports.OrderItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]ports.OrderItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, ports.OrderItemInput{Qty: it.Qty, Product: it.Product})
	}
	return inputs
}

// List handles GET /orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/:orderId.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:   req.UserID,
		Client:   req.Client,
		Products: toItemInputs(req.Products),
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, order)
}

// Update handles PUT /orders/:orderId.
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.Update(c.Request().Context(), c.Param("orderId"), ports.UpdateOrderInput{
		UserID:   req.UserID,
		Client:   req.Client,
		Products: toItemInputs(req.Products),
		Status:   req.Status,
	})
	if err != nil {
		return err
	}

	if req.Status != nil {
		metrics.OrderTransitionsTotal.WithLabelValues(*req.Status).Inc()
	}
	return c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /orders/:orderId.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("orderId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "order deleted"})
}
