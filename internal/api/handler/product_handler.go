package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Image string  `json:"image"`
	Type  string  `json:"type"`
}

// Fields are pointers so "absent" and "zero" can be told apart; an update
// may change any subset of them.
type updateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Image *string  `json:"image"`
	Type  *string  `json:"type"`
}

// List handles GET /products.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:productId. The parameter is an id or a name.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products (admin only).
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
		Type:  req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /products/:productId (admin only).
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("productId"), ports.UpdateProductInput{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
		Type:  req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:productId (admin only).
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("productId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "product deleted"})
}
