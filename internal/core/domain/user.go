package domain

import (
	"errors"
	"time"
)

// User models a registered account. PasswordHash is a bcrypt digest of the
// password; the plaintext is never stored or logged.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrMissingFields = errors.New("missing required fields")
var ErrWeakPassword = errors.New("password does not meet the strength policy")
var ErrUserExists = errors.New("username or email already used")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
