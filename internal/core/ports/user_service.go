package ports

import (
	"context"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
)

// CreateUserInput carries the data needed to create a user account.
type CreateUserInput struct {
	Email        string
	Password     string
	Capabilities []domain.Capability
}

// UpdateUserInput carries a user update. Email and Password are required by
// the API contract; Capabilities is optional and admin-only.
type UpdateUserInput struct {
	Email        string
	Password     string
	Capabilities *[]domain.Capability
}

// UserService defines use-case operations over user accounts.
type UserService interface {
	List(ctx context.Context, page Page) ([]*domain.User, error)
	Get(ctx context.Context, key string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// Update applies in to the user identified by key. The actor is needed
	// to reject capability changes by non-admins.
	Update(ctx context.Context, actor *domain.User, key string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, key string) error
	// EnsureAdmin idempotently creates the bootstrap admin account when the
	// configured credentials are present and no user with that email exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}
