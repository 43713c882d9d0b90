package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"innsync/internal/session"
)

func TestStore_Lifecycle(t *testing.T) {
	store := session.NewStore()

	assert.False(t, store.Active())
	assert.Empty(t, store.Token())

	store.Set("access-token", "guest@example.com", "Guest")

	assert.True(t, store.Active())
	assert.Equal(t, "access-token", store.Token())

	email, name := store.User()
	assert.Equal(t, "guest@example.com", email)
	assert.Equal(t, "Guest", name)

	store.Clear()

	assert.False(t, store.Active())
	assert.Empty(t, store.Token())
}
