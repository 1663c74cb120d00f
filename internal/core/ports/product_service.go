package ports

import (
	"context"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
)

// CreateProductInput carries the data needed to create a catalog product.
type CreateProductInput struct {
	Name  string
	Price float64
	Image string
	Type  string
}

// UpdateProductInput carries a product update. Nil pointers mean "not
// supplied".
type UpdateProductInput struct {
	Name  *string
	Price *float64
	Image *string
	Type  *string
}

// ProductService defines use-case operations over the product catalog.
type ProductService interface {
	List(ctx context.Context, page Page) ([]*domain.Product, error)
	Get(ctx context.Context, key string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, key string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, key string) error
}
