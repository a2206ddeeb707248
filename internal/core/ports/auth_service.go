package ports

import (
	"context"

	"github.com/ironlabs/basic-auth/internal/core/domain"
)

type AuthService interface {
	// Signup validates the credentials, hashes the password and creates the
	// account. The returned user never carries the plaintext password.
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)

	// Login verifies the credentials and starts a session bound to the user's
	// id. The returned string is the opaque session identifier.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Profile fetches the current user record for an authenticated session.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
