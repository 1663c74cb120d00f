package ports

import (
	"context"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
)

// ProductUpdate carries the fields of a product update. Nil pointers leave
// the stored value untouched.
type ProductUpdate struct {
	Name  *string
	Price *float64
	Image *string
	Type  *string
}

// ProductRepository defines persistence operations for catalog products.
// Key parameters accept either a document id or the product name, the
// alternate lookup key exposed by the API.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByKey(ctx context.Context, key string) (*domain.Product, error)
	List(ctx context.Context, page Page) ([]*domain.Product, error)
	Update(ctx context.Context, key string, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, key string) error
}
