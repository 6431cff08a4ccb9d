package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorekeep/scorekeep/pkg/types"
)

func TestCreateUser(t *testing.T) {
	t.Run("starts with zero balance", func(t *testing.T) {
		s, _ := newTestService(t)
		user, err := s.CreateUser("alice", "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Balance)
	})

	t.Run("duplicate name is invalid input", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.CreateUser("alice", "hash")
		require.NoError(t, err)
		_, err = s.CreateUser("alice", "other")
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})
}

func TestCreateValidation(t *testing.T) {
	t.Run("negative task value is rejected without a row", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)

		_, err := s.CreateTask(owner, "bad", "", time.Now(), -1)
		assert.ErrorIs(t, err, types.ErrInvalidInput)

		tasks, err := s.TasksForOwner(owner)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("negative reward value is rejected", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)

		_, err := s.CreateReward(owner, "bad", "", -1)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("creation appends no ledger entry", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)

		_, err := s.CreateTask(owner, "mow lawn", "", time.Now(), 20)
		require.NoError(t, err)
		_, err = s.CreateReward(owner, "ice cream", "", 5)
		require.NoError(t, err)

		transactions, err := s.Transactions(owner)
		require.NoError(t, err)
		assert.Empty(t, transactions)
		requireInvariant(t, s, owner)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("value edit changes future deltas only", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		task, err := s.CreateTask(owner, "mow lawn", "", time.Now(), 20)
		require.NoError(t, err)
		_, err = s.CompleteTask(owner, task.ID)
		require.NoError(t, err)

		_, err = s.UpdateTask(owner, task.ID, "mow lawn", "bigger yard", task.Due, 50)
		require.NoError(t, err)

		// Reversal uses the new stored value; past entries stay untouched.
		_, err = s.UncompleteTask(owner, task.ID)
		require.NoError(t, err)

		transactions, err := s.Transactions(owner)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, int64(20), transactions[0].Amount)
		assert.Equal(t, int64(-50), transactions[1].Amount)
		requireInvariant(t, s, owner)
	})

	t.Run("cannot update a foreign task", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		other, err := s.CreateUser("bob", "hash")
		require.NoError(t, err)
		task, err := s.CreateTask(owner, "mow lawn", "", time.Now(), 20)
		require.NoError(t, err)

		_, err = s.UpdateTask(other.ID, task.ID, "stolen", "", task.Due, 1)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestUpdateReward(t *testing.T) {
	s, _ := newTestService(t)
	owner := newTestOwner(t, s)
	reward, err := s.CreateReward(owner, "ice cream", "", 5)
	require.NoError(t, err)

	updated, err := s.UpdateReward(owner, reward.ID, "sundae", "with sprinkles", 8)
	require.NoError(t, err)
	assert.Equal(t, "sundae", updated.Name)
	assert.Equal(t, int64(8), updated.Value)
	assert.Equal(t, int64(0), updated.Completions)
}

func TestRecord(t *testing.T) {
	s, _ := newTestService(t)
	owner := newTestOwner(t, s)

	when := time.Date(2026, 9, 1, 23, 59, 0, 0, time.Local)
	tr, err := s.Record(owner, 12, when)
	require.NoError(t, err)
	assert.True(t, tr.Day.Equal(types.DayOf(when)))

	summaries, err := s.Summarize(owner, when)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(12), summaries[0].Total)
}
