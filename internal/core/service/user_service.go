package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// UserService implements account management and the admin bootstrap.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, page ports.Page) ([]*domain.User, error) {
	return s.repo.List(ctx, page.Normalize())
}

func (s *UserService) Get(ctx context.Context, key string) (*domain.User, error) {
	return s.repo.FindByKey(ctx, key)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Capabilities: in.Capabilities,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

// Update applies in to the user identified by key. Email and password are
// both required; capability changes are restricted to admins.
func (s *UserService) Update(ctx context.Context, actor *domain.User, key string, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if in.Capabilities != nil && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hashStr := string(hash)
	return s.repo.Update(ctx, key, ports.UserUpdate{
		Email:        &in.Email,
		PasswordHash: &hashStr,
		Capabilities: in.Capabilities,
	})
}

func (s *UserService) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet.
// Safe to call on every startup; a second run with the same email is a no-op.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.logger.Debug().Msg("admin bootstrap skipped: no credentials configured")
		return nil
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		s.logger.Info().Str("email", email).Msg("admin account already present")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	_, err := s.Create(ctx, ports.CreateUserInput{
		Email:        email,
		Password:     password,
		Capabilities: []domain.Capability{domain.CapabilityAdmin},
	})
	if err != nil && !errors.Is(err, domain.ErrUserExists) {
		return err
	}

	s.logger.Info().Str("email", email).Msg("admin account bootstrapped")
	return nil
}
