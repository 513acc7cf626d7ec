package auth

import (
	"testing"
	"time"

	"github.com/recruitwarx/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	id := store.Create(Session{UserID: 7, Username: "ada", Role: models.RoleCandidate})
	require.NotEmpty(t, id)

	sess, ok := store.Get(id)
	require.True(t, ok)
	assert.EqualValues(t, 7, sess.UserID)
	assert.Equal(t, models.RoleCandidate, sess.Role)

	// Distinct logins never share an id.
	other := store.Create(Session{UserID: 8})
	assert.NotEqual(t, id, other)

	store.Delete(id)
	_, ok = store.Get(id)
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)

	id := store.Create(Session{UserID: 1})
	_, ok := store.Get(id)
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = store.Get(id)
	assert.False(t, ok, "expired session must not resolve")
}
