package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP boundary.
// The API error handler maps each of these to a deterministic status code.
var (
	// ErrForbiddenCredential marks a bearer token that failed signature or
	// expiry verification. Distinct from a missing credential, which is
	// treated as an anonymous request rather than an error.
	ErrForbiddenCredential = errors.New("invalid or expired token")

	// ErrMissingFields marks a request lacking required fields.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidCredentials marks a login attempt with a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrInvalidProduct  = errors.New("name and price are required")
	ErrInvalidPrice    = errors.New("price must be an integer")

	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("userId, client and a non-empty product list are required")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrEmptyUpdate   = errors.New("no fields provided to update")
)
