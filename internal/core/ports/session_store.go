package ports

import (
	"context"

	"github.com/ironlabs/basic-auth/internal/core/domain"
)

// SessionStore persists sessions server-side, keyed by session id.
// Find returns domain.ErrNotAuthenticated when no record exists.
// Delete is idempotent.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
