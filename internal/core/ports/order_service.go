package ports

import (
	"context"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
)

// OrderItemInput is one product line in an order create/update request.
type OrderItemInput struct {
	Qty     int
	Product domain.Product
}

// CreateOrderInput carries the data needed to create an order.
type CreateOrderInput struct {
	UserID   string
	Client   string
	Products []OrderItemInput
}

// UpdateOrderInput carries an order update. Nil pointers mean "not
// supplied"; at least one field must be present.
type UpdateOrderInput struct {
	UserID   *string
	Client   *string
	Products []OrderItemInput
	Status   *string
}

// OrderService defines use-case operations over orders, including the
// status lifecycle rules.
type OrderService interface {
	List(ctx context.Context, page Page) ([]*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	Update(ctx context.Context, id string, in UpdateOrderInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
