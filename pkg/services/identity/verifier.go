package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
)

const RoleAdmin = "admin"

var (
	ErrUnknownToken   = errors.New("unknown session token")
	ErrSessionExpired = errors.New("session expired")
)

// User is the only identity surface the report engine consumes: a stable
// id and an out-of-band role claim.
type User struct {
	ID   string
	Role string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Verifier interface {
	Verify(ctx context.Context, token string) (User, error)
}

type SessionStore interface {
	Lookup(ctx context.Context, token string) (*store.SessionRecord, error)
}

type sessionVerifier struct {
	sessions SessionStore
	now      func() time.Time
}

// NewSessionVerifier verifies bearer tokens against the identity
// collaborator's session read model.
func NewSessionVerifier(sessions SessionStore) (Verifier, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store is nil")
	}
	return &sessionVerifier{sessions: sessions, now: time.Now}, nil
}

func (v *sessionVerifier) Verify(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrUnknownToken
	}

	rec, err := v.sessions.Lookup(ctx, token)
	if err != nil {
		return User{}, fmt.Errorf("session lookup failed: %w", err)
	}
	if rec == nil {
		return User{}, ErrUnknownToken
	}
	if rec.ExpiresAt.Before(v.now()) {
		return User{}, ErrSessionExpired
	}

	return User{ID: rec.UserID, Role: rec.Role}, nil
}
