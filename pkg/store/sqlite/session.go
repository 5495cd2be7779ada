package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
)

type SessionStore interface {
	// Lookup resolves a session token. Returns (nil, nil) when the token
	// is unknown.
	Lookup(ctx context.Context, token string) (*store.SessionRecord, error)
}

type sessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) (SessionStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &sessionStore{db: db}, nil
}

func (s *sessionStore) Lookup(ctx context.Context, token string) (*store.SessionRecord, error) {
	query := `
		SELECT token, user_id, role, expires_at
		FROM sessions
		WHERE token = ?`

	var rec store.SessionRecord
	err := s.db.QueryRowContext(ctx, query, token).
		Scan(&rec.Token, &rec.UserID, &rec.Role, &rec.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}
	return &rec, nil
}
