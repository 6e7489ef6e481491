package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// UserFinder resolves login names for authentication.
type UserFinder interface {
	// UserByUsername returns ErrNotFound for unknown usernames.
	UserByUsername(ctx context.Context, username string) (User, error)
}

// Authenticator verifies credentials and opens sessions.
type Authenticator struct {
	users    UserFinder
	sessions *SessionManager
}

// NewAuthenticator constructs an Authenticator.
func NewAuthenticator(users UserFinder, sessions *SessionManager) (*Authenticator, error) {
	if users == nil || sessions == nil {
		return nil, errors.New("user finder and session manager are required")
	}
	return &Authenticator{users: users, sessions: sessions}, nil
}

// Login verifies the password and, on success, creates a session and returns
// the raw token with its expiry. Unknown usernames, disabled accounts and
// wrong passwords all collapse into ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	user, err := a.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, fmt.Errorf("%w: lookup user: %v", ErrStoreUnavailable, err)
	}
	if user.Status != UserStatusActive {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return a.sessions.Create(ctx, user.ID)
}
