package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ironlabs/basic-auth/internal/core/domain"
	"github.com/ironlabs/basic-auth/internal/core/ports"
)

// DefaultSessionTTL is the sliding inactivity window applied when no TTL is
// configured.
const DefaultSessionTTL = 60 * time.Second

// SessionManager owns session records in the configured store. The cookie
// layer only ever sees the opaque session id.
type SessionManager struct {
	store ports.SessionStore
	ttl   time.Duration
}

func NewSessionManager(store ports.SessionStore, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{store: store, ttl: ttl}
}

// Start creates a session with a fresh unguessable id and returns the id.
func (m *SessionManager) Start(ctx context.Context, userID string) (string, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, session); err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return session.ID, nil
}

// Touch resolves the session and slides its expiry forward by the TTL.
// A missing or expired session fails with domain.ErrNotAuthenticated; expired
// records are removed on sight.
func (m *SessionManager) Touch(ctx context.Context, sessionID string) (string, error) {
	session, err := m.store.Find(ctx, sessionID)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if session.Expired(now) {
		_ = m.store.Delete(ctx, sessionID)
		return "", domain.ErrNotAuthenticated
	}

	session.ExpiresAt = now.Add(m.ttl)
	if err := m.store.Save(ctx, session); err != nil {
		return "", fmt.Errorf("touch session: %w", err)
	}
	return session.UserID, nil
}

// Destroy removes the session. Unknown ids are not an error.
func (m *SessionManager) Destroy(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
