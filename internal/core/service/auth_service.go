package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// AuthService implements login and token minting. Tokens are HS256-signed
// with the secret injected at construction; there is no ambient global.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies the email/password pair and returns a signed token.
// Unknown email and wrong password are reported as distinct errors so the
// boundary can render 404 and 401 respectively.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(user)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	roles := make([]string, 0, len(user.Capabilities))
	for _, c := range user.Capabilities {
		roles = append(roles, string(c))
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"roles": roles,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
