package ports

import (
	"context"

	"github.com/ironlabs/basic-auth/internal/core/domain"
)

// UserRepository defines the persistence boundary for user accounts.
// Create must be atomic with respect to the uniqueness of username and email:
// under concurrent creates with the same email, exactly one may succeed and
// the rest must fail with domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
