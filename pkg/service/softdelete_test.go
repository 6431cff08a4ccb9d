package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorekeep/scorekeep/pkg/types"
)

func TestDeleteAndRestoreTask(t *testing.T) {
	t.Run("delete hides, restore brings back identical state", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		task, err := s.CreateTask(owner, "mow lawn", "front yard", time.Now(), 20)
		require.NoError(t, err)
		_, err = s.CompleteTask(owner, task.ID)
		require.NoError(t, err)

		snapshot, token, err := s.DeleteTask(owner, task.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, snapshot.Completed, "snapshot reflects pre-deletion state")
		assert.Equal(t, int64(20), snapshot.Value)

		tasks, err := s.TasksForOwner(owner)
		require.NoError(t, err)
		assert.Empty(t, tasks)

		restored, err := s.RestoreTask(owner, task.ID)
		require.NoError(t, err)
		assert.True(t, restored.Completed, "completed flag survives the round trip")
		assert.Equal(t, snapshot.Value, restored.Value)
		assert.Equal(t, types.StateActive, restored.State)

		tasks, err = s.TasksForOwner(owner)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("neither delete nor restore touches balance or ledger", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		task, err := s.CreateTask(owner, "mow lawn", "", time.Now(), 20)
		require.NoError(t, err)
		_, err = s.CompleteTask(owner, task.ID)
		require.NoError(t, err)

		_, _, err = s.DeleteTask(owner, task.ID)
		require.NoError(t, err)
		_, err = s.RestoreTask(owner, task.ID)
		require.NoError(t, err)

		user, err := s.GetUser(owner)
		require.NoError(t, err)
		assert.Equal(t, int64(20), user.Balance, "deleting never claws back earned points")

		transactions, err := s.Transactions(owner)
		require.NoError(t, err)
		assert.Len(t, transactions, 1)
		requireInvariant(t, s, owner)
	})

	t.Run("deleted task is unreachable by mutating operations", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		task, err := s.CreateTask(owner, "mow lawn", "", time.Now(), 20)
		require.NoError(t, err)
		_, _, err = s.DeleteTask(owner, task.ID)
		require.NoError(t, err)

		_, err = s.CompleteTask(owner, task.ID)
		assert.ErrorIs(t, err, types.ErrNotFound)
		_, err = s.RefreshTask(owner, task.ID)
		assert.ErrorIs(t, err, types.ErrNotFound)
		_, _, err = s.DeleteTask(owner, task.ID)
		assert.ErrorIs(t, err, types.ErrNotFound, "double delete is NotFound, not idempotent")
	})

	t.Run("deleting a missing task returns ErrNotFound", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		_, _, err := s.DeleteTask(owner, 404)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestDeleteAndRestoreReward(t *testing.T) {
	s, _ := newTestService(t)
	owner := newTestOwner(t, s)
	reward, err := s.CreateReward(owner, "ice cream", "", 5)
	require.NoError(t, err)
	_, err = s.RedeemReward(owner, reward.ID)
	require.NoError(t, err)

	snapshot, token, err := s.DeleteReward(owner, reward.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1), snapshot.Completions)

	rewards, err := s.RewardsForOwner(owner)
	require.NoError(t, err)
	assert.Empty(t, rewards)

	restored, err := s.RestoreReward(owner, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), restored.Completions, "counter survives the round trip")

	user, err := s.GetUser(owner)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), user.Balance, "spent points stay spent")
	requireInvariant(t, s, owner)
}

func TestUndo(t *testing.T) {
	t.Run("token restores the deleted task", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		task, err := s.CreateTask(owner, "mow lawn", "", time.Now(), 20)
		require.NoError(t, err)

		_, token, err := s.DeleteTask(owner, task.ID)
		require.NoError(t, err)
		require.NoError(t, s.Undo(token))

		tasks, err := s.TasksForOwner(owner)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("token restores the deleted reward", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		reward, err := s.CreateReward(owner, "ice cream", "", 5)
		require.NoError(t, err)

		_, token, err := s.DeleteReward(owner, reward.ID)
		require.NoError(t, err)
		require.NoError(t, s.Undo(token))

		rewards, err := s.RewardsForOwner(owner)
		require.NoError(t, err)
		assert.Len(t, rewards, 1)
	})

	t.Run("tokens are single-use and unknown tokens fail", func(t *testing.T) {
		s, _ := newTestService(t)
		owner := newTestOwner(t, s)
		task, err := s.CreateTask(owner, "mow lawn", "", time.Now(), 20)
		require.NoError(t, err)

		_, token, err := s.DeleteTask(owner, task.ID)
		require.NoError(t, err)
		require.NoError(t, s.Undo(token))

		assert.ErrorIs(t, s.Undo(token), types.ErrNotFound)
		assert.ErrorIs(t, s.Undo("no-such-token"), types.ErrNotFound)
	})
}
