package ports

import (
	"context"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
)

// UserUpdate carries the fields of a user update. Nil pointers leave the
// stored value untouched.
type UserUpdate struct {
	Email        *string
	PasswordHash *string
	Capabilities *[]domain.Capability
}

// UserRepository defines persistence operations for user accounts.
// Key parameters accept either a document id or the user's email, the
// alternate lookup key exposed by the API.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByKey(ctx context.Context, key string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page Page) ([]*domain.User, error)
	Update(ctx context.Context, key string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, key string) error
}

// Page carries pagination parameters for list queries. Zero values are
// normalised by Normalize.
type Page struct {
	Number int // 1-based
	Limit  int
}

// Normalize clamps page parameters to sane defaults (page 1, limit 10,
// capped at 100).
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}
