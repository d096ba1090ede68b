package services

import (
	"sync"
	"testing"
	"time"

	"assetmgr/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	user := &models.User{ID: 7, Email: "alice@example.com", Role: models.RoleAdmin}

	t.Run("issue and resolve", func(t *testing.T) {
		store := NewMemorySessionStore(12 * time.Hour)

		token, err := store.Issue(user)
		require.NoError(t, err)
		// 32 random bytes, URL-safe encoded without padding
		assert.Len(t, token, 43)

		session, ok := store.Resolve(token)
		require.True(t, ok)
		assert.Equal(t, uint(7), session.UserID)
		assert.Equal(t, "alice@example.com", session.Email)
		assert.Equal(t, models.RoleAdmin, session.Role)
		assert.Equal(t, 12*time.Hour, session.ExpiresAt.Sub(session.IssuedAt))
	})

	t.Run("tokens are unique", func(t *testing.T) {
		store := NewMemorySessionStore(12 * time.Hour)

		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token, err := store.Issue(user)
			require.NoError(t, err)
			assert.False(t, seen[token])
			seen[token] = true
		}
	})

	t.Run("resolve unknown token", func(t *testing.T) {
		store := NewMemorySessionStore(12 * time.Hour)

		_, ok := store.Resolve("not-a-token")
		assert.False(t, ok)
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		store := NewMemorySessionStore(12 * time.Hour)

		token, err := store.Issue(user)
		require.NoError(t, err)

		store.Revoke(token)
		_, ok := store.Resolve(token)
		assert.False(t, ok)

		// Second revoke is a no-op
		store.Revoke(token)
	})

	t.Run("resolved session is a copy", func(t *testing.T) {
		store := NewMemorySessionStore(12 * time.Hour)

		token, err := store.Issue(user)
		require.NoError(t, err)

		first, ok := store.Resolve(token)
		require.True(t, ok)
		first.Role = models.RoleStaff

		second, ok := store.Resolve(token)
		require.True(t, ok)
		assert.Equal(t, models.RoleAdmin, second.Role)
	})

	t.Run("concurrent issue, resolve and revoke", func(t *testing.T) {
		store := NewMemorySessionStore(12 * time.Hour)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				token, err := store.Issue(user)
				assert.NoError(t, err)
				_, ok := store.Resolve(token)
				assert.True(t, ok)
				store.Revoke(token)
			}()
		}
		wg.Wait()
	})
}

func TestSessionExpired(t *testing.T) {
	issued := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	session := &Session{
		IssuedAt:  issued,
		ExpiresAt: issued.Add(12 * time.Hour),
	}

	assert.False(t, session.Expired(issued))
	assert.False(t, session.Expired(issued.Add(12*time.Hour)))
	assert.True(t, session.Expired(issued.Add(12*time.Hour+time.Nanosecond)))
}
