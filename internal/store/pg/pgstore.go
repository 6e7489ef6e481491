// Package pg implements the auth storage interfaces on PostgreSQL.
package pg

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"st29.ru/authcore/internal/auth"
)

// Store backs every auth storage interface with one connection pool. Each
// call acquires a connection from the pool and releases it on return; there
// is no session affinity between calls.
type Store struct {
	db *sql.DB
}

var (
	_ auth.SessionStore = (*Store)(nil)
	_ auth.GraphReader  = (*Store)(nil)
	_ auth.CatalogStore = (*Store)(nil)
	_ auth.UserFinder   = (*Store)(nil)
)

// Open connects to PostgreSQL with pool defaults tuned for many short
// authorization lookups.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return &Store{db: db}, nil
}

// NewStore wraps an existing handle (used by tests).
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle for readiness probes.
func (s *Store) DB() *sql.DB { return s.db }

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
