package service

import (
	"context"
	"time"

	"github.com/ironlabs/basic-auth/internal/core/domain"
	"github.com/ironlabs/basic-auth/internal/core/ports"
)

// AuthService implements signup and login as sequential pipelines that
// short-circuit on the first failure.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	sessions ports.SessionManager
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, sessions ports.SessionManager) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, sessions: sessions}
}

// Signup validates, hashes and persists a new account. Duplicate usernames or
// emails surface as domain.ErrUserExists from the repository.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := ValidateSignup(username, email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and starts a session bound to the user's id.
// Lookup and verification stay distinct steps: an unregistered email fails
// with domain.ErrUserNotFound, a wrong password with
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if err := ValidateLogin(email, password); err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	return sessionID, user, nil
}

// Profile re-fetches the user bound to an authenticated session so the view
// reflects the current record, not a login-time snapshot.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}
