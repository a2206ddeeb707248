package domain

import (
	"errors"
	"time"
)

// Session binds an opaque identifier to an authenticated user for a bounded
// time window. It holds only the user id; callers needing user data must
// re-fetch it from the repository so the view is never stale.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is invalid at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

var ErrNotAuthenticated = errors.New("not authenticated")
