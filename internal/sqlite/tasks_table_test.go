package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorekeep/scorekeep/pkg/types"
)

func TestTasksCreate(t *testing.T) {
	t.Run("new task is uncompleted and active", func(t *testing.T) {
		b := setupBackend(t)
		ownerID := createUser(t, b, "alice")

		due := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
		task := &types.Task{OwnerID: ownerID, Name: "mow lawn", Description: "front and back", Due: due, Value: 20}
		id, err := b.Tasks().Create(task)
		require.NoError(t, err)

		got, err := b.Tasks().Get(ownerID, id)
		require.NoError(t, err)
		assert.Equal(t, "mow lawn", got.Name)
		assert.True(t, got.Due.Equal(due))
		assert.Equal(t, int64(20), got.Value)
		assert.False(t, got.Completed)
		assert.Equal(t, types.StateActive, got.State)
	})

	t.Run("negative value returns ErrInvalidInput", func(t *testing.T) {
		b := setupBackend(t)
		ownerID := createUser(t, b, "alice")

		_, err := b.Tasks().Create(&types.Task{OwnerID: ownerID, Name: "bad", Due: time.Now(), Value: -1})
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("empty name returns ErrInvalidInput", func(t *testing.T) {
		b := setupBackend(t)
		ownerID := createUser(t, b, "alice")

		_, err := b.Tasks().Create(&types.Task{OwnerID: ownerID, Due: time.Now(), Value: 1})
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("a row whose owner has no user record is stored", func(t *testing.T) {
		// Owner integrity is the service layer's concern; storage must keep
		// the row visible so an orphan can be detected and reported.
		b := setupBackend(t)

		id, err := b.Tasks().Create(&types.Task{OwnerID: 999, Name: "ghost", Due: time.Now(), Value: 1})
		require.NoError(t, err)

		task, err := b.Tasks().Get(999, id)
		require.NoError(t, err)
		assert.Equal(t, int64(999), task.OwnerID)
	})
}

func TestTasksScopedLookup(t *testing.T) {
	t.Run("another owner's task is not found", func(t *testing.T) {
		b := setupBackend(t)
		alice := createUser(t, b, "alice")
		bob := createUser(t, b, "bob")
		taskID := createTask(t, b, alice, 20)

		_, err := b.Tasks().Get(bob, taskID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("soft-deleted task is hidden from Get and ForOwner", func(t *testing.T) {
		b := setupBackend(t)
		alice := createUser(t, b, "alice")
		taskID := createTask(t, b, alice, 20)

		require.NoError(t, b.Tasks().SetState(alice, taskID, types.StateDeleted))

		_, err := b.Tasks().Get(alice, taskID)
		assert.ErrorIs(t, err, types.ErrNotFound)

		tasks, err := b.Tasks().ForOwner(alice)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("GetAny sees soft-deleted rows", func(t *testing.T) {
		b := setupBackend(t)
		alice := createUser(t, b, "alice")
		taskID := createTask(t, b, alice, 20)
		require.NoError(t, b.Tasks().SetState(alice, taskID, types.StateDeleted))

		task, err := b.Tasks().GetAny(alice, taskID)
		require.NoError(t, err)
		assert.Equal(t, types.StateDeleted, task.State)
	})

	t.Run("ForOwner lists only the owner's active tasks", func(t *testing.T) {
		b := setupBackend(t)
		alice := createUser(t, b, "alice")
		bob := createUser(t, b, "bob")
		createTask(t, b, alice, 5)
		createTask(t, b, alice, 10)
		createTask(t, b, bob, 7)

		tasks, err := b.Tasks().ForOwner(alice)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
		for _, task := range tasks {
			assert.Equal(t, alice, task.OwnerID)
		}
	})
}

func TestTasksSetCompleted(t *testing.T) {
	t.Run("flips the flag when observed matches", func(t *testing.T) {
		b := setupBackend(t)
		alice := createUser(t, b, "alice")
		taskID := createTask(t, b, alice, 20)

		require.NoError(t, b.Tasks().SetCompleted(alice, taskID, false))

		task, err := b.Tasks().Get(alice, taskID)
		require.NoError(t, err)
		assert.True(t, task.Completed)
	})

	t.Run("stale observed value returns ErrConflict", func(t *testing.T) {
		b := setupBackend(t)
		alice := createUser(t, b, "alice")
		taskID := createTask(t, b, alice, 20)
		require.NoError(t, b.Tasks().SetCompleted(alice, taskID, false))

		// A second writer that still believes completed=false loses.
		err := b.Tasks().SetCompleted(alice, taskID, false)
		assert.ErrorIs(t, err, types.ErrConflict)
	})
}

func TestTasksForceCompleted(t *testing.T) {
	b := setupBackend(t)
	alice := createUser(t, b, "alice")
	taskID := createTask(t, b, alice, 20)
	require.NoError(t, b.Tasks().SetCompleted(alice, taskID, false))

	// Unconditional reset regardless of current flag.
	require.NoError(t, b.Tasks().ForceCompleted(alice, taskID, false))
	require.NoError(t, b.Tasks().ForceCompleted(alice, taskID, false))

	task, err := b.Tasks().Get(alice, taskID)
	require.NoError(t, err)
	assert.False(t, task.Completed)
}

func TestTasksUpdate(t *testing.T) {
	t.Run("edits fields without touching completion", func(t *testing.T) {
		b := setupBackend(t)
		alice := createUser(t, b, "alice")
		taskID := createTask(t, b, alice, 20)
		require.NoError(t, b.Tasks().SetCompleted(alice, taskID, false))

		due := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
		err := b.Tasks().Update(&types.Task{ID: taskID, OwnerID: alice, Name: "renamed", Description: "new", Due: due, Value: 35})
		require.NoError(t, err)

		task, err := b.Tasks().Get(alice, taskID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", task.Name)
		assert.Equal(t, int64(35), task.Value)
		assert.True(t, task.Completed, "update must not reset the completed flag")
	})

	t.Run("invalid lifecycle value is rejected", func(t *testing.T) {
		b := setupBackend(t)
		alice := createUser(t, b, "alice")
		taskID := createTask(t, b, alice, 20)

		err := b.Tasks().SetState(alice, taskID, types.Lifecycle("archived"))
		assert.ErrorIs(t, err, types.ErrInvalidState)
	})
}
