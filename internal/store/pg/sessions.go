package pg

import (
	"context"
	"database/sql"
	"errors"

	"st29.ru/authcore/internal/auth"
)

// Put persists a session record. Only the token hash is stored.
func (s *Store) Put(ctx context.Context, session auth.Session) error {
	_, err := s.db.ExecContext(ctx, `
		insert into sessions(token_hash, user_id, expires_at, created_at)
		values ($1, $2, $3, $4)
	`, session.TokenHash, session.UserID, session.ExpiresAt, session.CreatedAt)
	return err
}

// GetByHash looks a session up by its token hash. The expiry check belongs
// to the session manager, not the store: an expired row is still returned.
func (s *Store) GetByHash(ctx context.Context, tokenHash string) (auth.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		select token_hash, user_id, expires_at, created_at
		from sessions
		where token_hash = $1
	`, tokenHash)
	var session auth.Session
	if err := row.Scan(&session.TokenHash, &session.UserID, &session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Session{}, auth.ErrNotFound
		}
		return auth.Session{}, err
	}
	return session, nil
}

// DeleteByUser removes every session owned by the user. Called when a user
// is deleted; there is no per-session revoke operation.
func (s *Store) DeleteByUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `delete from sessions where user_id = $1`, userID)
	return err
}
