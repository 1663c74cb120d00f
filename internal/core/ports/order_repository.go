package ports

import (
	"context"
	"time"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
)

// OrderUpdate carries the fields of an order update. Nil pointers leave the
// stored value untouched. DateProcessed is only ever set by the service on
// the first transition to delivered; repositories must not clear it.
type OrderUpdate struct {
	UserID        *string
	Client        *string
	Products      []domain.OrderItem
	Status        *domain.OrderStatus
	DateProcessed *time.Time
}

// Empty reports whether the update carries no mutable field.
func (u OrderUpdate) Empty() bool {
	return u.UserID == nil && u.Client == nil && u.Products == nil && u.Status == nil
}

// OrderRepository defines persistence operations for orders. Updates go
// through the store's atomic find-and-update primitive; concurrent writers
// are serialised there (last write wins, no version field).
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, page Page) ([]*domain.Order, error)
	Update(ctx context.Context, id string, upd OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
