package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_Lookup(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := db.Exec(`INSERT INTO sessions (token, user_id, role, expires_at) VALUES (?, ?, ?, ?)`,
		"tok-1", "u1", "admin", expires)
	require.NoError(t, err)

	sessionStore, err := NewSessionStore(db)
	require.NoError(t, err)

	t.Run("known token", func(t *testing.T) {
		rec, err := sessionStore.Lookup(ctx, "tok-1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "u1", rec.UserID)
		assert.Equal(t, "admin", rec.Role)
		assert.True(t, rec.ExpiresAt.Equal(expires))
	})

	t.Run("unknown token", func(t *testing.T) {
		rec, err := sessionStore.Lookup(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}
