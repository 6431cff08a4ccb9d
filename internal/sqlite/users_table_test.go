package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorekeep/scorekeep/pkg/types"
)

func TestUsersCreate(t *testing.T) {
	t.Run("new user starts with zero balance", func(t *testing.T) {
		b := setupBackend(t)

		user := &types.User{Name: "alice", PasswordHash: "x"}
		id, err := b.Users().Create(user)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)

		got, err := b.Users().Get(id)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Name)
		assert.Equal(t, "x", got.PasswordHash)
		assert.Equal(t, int64(0), got.Balance)
	})

	t.Run("duplicate name returns ErrInvalidInput", func(t *testing.T) {
		b := setupBackend(t)
		createUser(t, b, "alice")

		_, err := b.Users().Create(&types.User{Name: "alice"})
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("empty name returns ErrInvalidInput", func(t *testing.T) {
		b := setupBackend(t)

		_, err := b.Users().Create(&types.User{Name: ""})
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})
}

func TestUsersGet(t *testing.T) {
	b := setupBackend(t)

	_, err := b.Users().Get(404)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUsersAddBalance(t *testing.T) {
	t.Run("applies signed deltas in place", func(t *testing.T) {
		b := setupBackend(t)
		ownerID := createUser(t, b, "alice")

		require.NoError(t, b.Users().AddBalance(ownerID, 20))
		require.NoError(t, b.Users().AddBalance(ownerID, -25))

		user, err := b.Users().Get(ownerID)
		require.NoError(t, err)
		assert.Equal(t, int64(-5), user.Balance, "balance may go negative")
	})

	t.Run("missing user returns ErrNotFound", func(t *testing.T) {
		b := setupBackend(t)
		err := b.Users().AddBalance(404, 10)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}
