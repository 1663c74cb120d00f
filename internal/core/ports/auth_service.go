package ports

import "context"

// AuthService authenticates users and mints access tokens.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed bearer
	// token bound to the matched user.
	Login(ctx context.Context, email, password string) (string, error)
}
