// This file implements the tasks table accessor for the SQLite backend.
// Scoped lookups filter on both owner and lifecycle state, so a row that is
// unowned, absent, or soft-deleted is indistinguishable to the caller.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/scorekeep/scorekeep/pkg/types"
)

var _ types.TaskStore = (*tasksTable)(nil)

type tasksTable struct {
	b *Backend
	q querier
}

func (t *tasksTable) conn() (querier, error) {
	if t.q != nil {
		return t.q, nil
	}
	return t.b.querier()
}

const taskColumns = "task_id, owner_id, name, description, due, value, completed, state"

// Create inserts a new task, uncompleted and active. Value must be
// non-negative; the balance mutator trusts stored values without
// re-validating them.
func (t *tasksTable) Create(task *types.Task) (int64, error) {
	q, err := t.conn()
	if err != nil {
		return 0, err
	}
	if task.Name == "" {
		return 0, fmt.Errorf("task name must not be empty: %w", types.ErrInvalidInput)
	}
	if task.Value < 0 {
		return 0, fmt.Errorf("task value must not be negative: %w", types.ErrInvalidInput)
	}

	res, err := q.Exec(
		"INSERT INTO tasks (owner_id, name, description, due, value, completed, state) VALUES (?, ?, ?, ?, ?, 0, ?)",
		task.OwnerID, task.Name, task.Description, task.Due.Format(time.RFC3339), task.Value, string(types.StateActive),
	)
	if err != nil {
		return 0, storageErr("inserting task", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading task id", err)
	}
	task.ID = id
	task.Completed = false
	task.State = types.StateActive
	return id, nil
}

// Get retrieves an active task scoped to its owner.
func (t *tasksTable) Get(ownerID, taskID int64) (*types.Task, error) {
	return t.get(ownerID, taskID, false)
}

// GetAny retrieves a task scoped to its owner including soft-deleted rows.
// Only the restore path may use this.
func (t *tasksTable) GetAny(ownerID, taskID int64) (*types.Task, error) {
	return t.get(ownerID, taskID, true)
}

func (t *tasksTable) get(ownerID, taskID int64, includeDeleted bool) (*types.Task, error) {
	q, err := t.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + taskColumns + " FROM tasks WHERE task_id = ? AND owner_id = ?"
	if !includeDeleted {
		query += " AND state = 'active'"
	}
	task, err := hydrateTask(q.QueryRow(query, taskID, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %d: %w", taskID, types.ErrNotFound)
		}
		return nil, storageErr("getting task", err)
	}
	return task, nil
}

// ForOwner lists the owner's active tasks ordered by due date.
func (t *tasksTable) ForOwner(ownerID int64) ([]*types.Task, error) {
	q, err := t.conn()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(
		"SELECT "+taskColumns+" FROM tasks WHERE owner_id = ? AND state = 'active' ORDER BY due, task_id",
		ownerID,
	)
	if err != nil {
		return nil, storageErr("listing tasks", err)
	}
	defer rows.Close()

	var tasks []*types.Task
	for rows.Next() {
		task, err := hydrateTaskFromRows(rows)
		if err != nil {
			return nil, storageErr("scanning task", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("listing tasks", err)
	}
	return tasks, nil
}

// Update persists name, description, due, and value for an active task.
// Ownership, completion, and lifecycle state are deliberately not writable
// here.
func (t *tasksTable) Update(task *types.Task) error {
	q, err := t.conn()
	if err != nil {
		return err
	}
	if task.Value < 0 {
		return fmt.Errorf("task value must not be negative: %w", types.ErrInvalidInput)
	}

	res, err := q.Exec(
		"UPDATE tasks SET name = ?, description = ?, due = ?, value = ? WHERE task_id = ? AND owner_id = ? AND state = 'active'",
		task.Name, task.Description, task.Due.Format(time.RFC3339), task.Value, task.ID, task.OwnerID,
	)
	if err != nil {
		return storageErr("updating task", err)
	}
	return requireRow(res, task.ID)
}

// SetCompleted flips the completed flag from the observed value to its
// negation. Zero rows affected means another mutation got there first;
// the caller receives ErrConflict instead of a silent double-apply.
func (t *tasksTable) SetCompleted(ownerID, taskID int64, observed bool) error {
	q, err := t.conn()
	if err != nil {
		return err
	}

	res, err := q.Exec(
		"UPDATE tasks SET completed = ? WHERE task_id = ? AND owner_id = ? AND state = 'active' AND completed = ?",
		boolToInt(!observed), taskID, ownerID, boolToInt(observed),
	)
	if err != nil {
		return storageErr("updating completed flag", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("updating completed flag", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d completed flag changed underfoot: %w", taskID, types.ErrConflict)
	}
	return nil
}

// ForceCompleted writes the completed flag unconditionally. Used by refresh,
// which resets a task without reversing balance.
func (t *tasksTable) ForceCompleted(ownerID, taskID int64, completed bool) error {
	q, err := t.conn()
	if err != nil {
		return err
	}

	res, err := q.Exec(
		"UPDATE tasks SET completed = ? WHERE task_id = ? AND owner_id = ? AND state = 'active'",
		boolToInt(completed), taskID, ownerID,
	)
	if err != nil {
		return storageErr("forcing completed flag", err)
	}
	return requireRow(res, taskID)
}

// SetState writes the lifecycle state. Matches on owner only, because the
// restore path must be able to reach soft-deleted rows.
func (t *tasksTable) SetState(ownerID, taskID int64, state types.Lifecycle) error {
	q, err := t.conn()
	if err != nil {
		return err
	}
	if !state.Valid() {
		return types.ErrInvalidState
	}

	res, err := q.Exec(
		"UPDATE tasks SET state = ? WHERE task_id = ? AND owner_id = ?",
		string(state), taskID, ownerID,
	)
	if err != nil {
		return storageErr("updating task state", err)
	}
	return requireRow(res, taskID)
}

// hydrateTask scans a single-row query into a Task.
func hydrateTask(row *sql.Row) (*types.Task, error) {
	task := &types.Task{}
	var due string
	var completed int
	var state string
	if err := row.Scan(&task.ID, &task.OwnerID, &task.Name, &task.Description, &due, &task.Value, &completed, &state); err != nil {
		return nil, err
	}
	return finishTask(task, due, completed, state)
}

// hydrateTaskFromRows scans the current row of a multi-row result set.
func hydrateTaskFromRows(rows *sql.Rows) (*types.Task, error) {
	task := &types.Task{}
	var due string
	var completed int
	var state string
	if err := rows.Scan(&task.ID, &task.OwnerID, &task.Name, &task.Description, &due, &task.Value, &completed, &state); err != nil {
		return nil, err
	}
	return finishTask(task, due, completed, state)
}

func finishTask(task *types.Task, due string, completed int, state string) (*types.Task, error) {
	parsed, err := time.Parse(time.RFC3339, due)
	if err != nil {
		return nil, fmt.Errorf("parsing due date: %w", err)
	}
	task.Due = parsed
	task.Completed = completed == 1
	task.State = types.Lifecycle(state)
	return task, nil
}

// requireRow converts a zero-rows-affected result into ErrNotFound.
func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("checking rows affected", err)
	}
	if n == 0 {
		return fmt.Errorf("record %d: %w", id, types.ErrNotFound)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
