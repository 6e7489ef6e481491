package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const defaultSessionTTL = 3 * time.Hour

// SessionStore persists session records keyed by token hash.
type SessionStore interface {
	Put(ctx context.Context, session Session) error
	// GetByHash returns ErrNotFound when no record matches.
	GetByHash(ctx context.Context, tokenHash string) (Session, error)
	DeleteByUser(ctx context.Context, userID string) error
}

// SessionManager issues and validates opaque session tokens.
type SessionManager struct {
	store SessionStore
	ttl   time.Duration
	now   func() time.Time
}

// SessionOption configures SessionManager.
type SessionOption func(*SessionManager)

// WithSessionTTL overrides the default 3h session lifetime.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(m *SessionManager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock overrides the time source (useful for expiry tests).
func WithClock(fn func() time.Time) SessionOption {
	return func(m *SessionManager) {
		if fn != nil {
			m.now = fn
		}
	}
}

// NewSessionManager constructs a SessionManager over the given store.
func NewSessionManager(store SessionStore, opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		store: store,
		ttl:   defaultSessionTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create issues a new session for the user and returns the raw token along
// with its expiry. Only the token hash reaches the store. Concurrent creates
// for the same user are fine; each yields an independent valid session.
func (m *SessionManager) Create(ctx context.Context, userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	token, err := GenerateToken()
	if err != nil {
		return "", time.Time{}, err
	}
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)
	session := Session{
		UserID:    userID,
		TokenHash: HashToken(token),
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := m.store.Put(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: put session: %v", ErrStoreUnavailable, err)
	}
	return token, expiresAt, nil
}

// Validate resolves a presented token to its session. An absent record and
// an expired one are indistinguishable to the caller: both return
// ErrInvalidSession. Only a storage fault surfaces differently.
func (m *SessionManager) Validate(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrInvalidSession
	}
	session, err := m.store.GetByHash(ctx, HashToken(token))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidSession
		}
		return Session{}, fmt.Errorf("%w: lookup session: %v", ErrStoreUnavailable, err)
	}
	if m.now().After(session.ExpiresAt) {
		return Session{}, ErrInvalidSession
	}
	return session, nil
}
