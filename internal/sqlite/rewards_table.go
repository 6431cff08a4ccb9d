// This file implements the rewards table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/scorekeep/scorekeep/pkg/types"
)

var _ types.RewardStore = (*rewardsTable)(nil)

type rewardsTable struct {
	b *Backend
	q querier
}

func (t *rewardsTable) conn() (querier, error) {
	if t.q != nil {
		return t.q, nil
	}
	return t.b.querier()
}

const rewardColumns = "reward_id, owner_id, name, description, value, completions, state"

// Create inserts a new reward with zero completions. Value must be
// non-negative.
func (t *rewardsTable) Create(reward *types.Reward) (int64, error) {
	q, err := t.conn()
	if err != nil {
		return 0, err
	}
	if reward.Name == "" {
		return 0, fmt.Errorf("reward name must not be empty: %w", types.ErrInvalidInput)
	}
	if reward.Value < 0 {
		return 0, fmt.Errorf("reward value must not be negative: %w", types.ErrInvalidInput)
	}

	res, err := q.Exec(
		"INSERT INTO rewards (owner_id, name, description, value, completions, state) VALUES (?, ?, ?, ?, 0, ?)",
		reward.OwnerID, reward.Name, reward.Description, reward.Value, string(types.StateActive),
	)
	if err != nil {
		return 0, storageErr("inserting reward", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading reward id", err)
	}
	reward.ID = id
	reward.Completions = 0
	reward.State = types.StateActive
	return id, nil
}

// Get retrieves an active reward scoped to its owner.
func (t *rewardsTable) Get(ownerID, rewardID int64) (*types.Reward, error) {
	return t.get(ownerID, rewardID, false)
}

// GetAny retrieves a reward scoped to its owner including soft-deleted rows.
func (t *rewardsTable) GetAny(ownerID, rewardID int64) (*types.Reward, error) {
	return t.get(ownerID, rewardID, true)
}

func (t *rewardsTable) get(ownerID, rewardID int64, includeDeleted bool) (*types.Reward, error) {
	q, err := t.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + rewardColumns + " FROM rewards WHERE reward_id = ? AND owner_id = ?"
	if !includeDeleted {
		query += " AND state = 'active'"
	}
	reward, err := hydrateReward(q.QueryRow(query, rewardID, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reward %d: %w", rewardID, types.ErrNotFound)
		}
		return nil, storageErr("getting reward", err)
	}
	return reward, nil
}

// ForOwner lists the owner's active rewards.
func (t *rewardsTable) ForOwner(ownerID int64) ([]*types.Reward, error) {
	q, err := t.conn()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(
		"SELECT "+rewardColumns+" FROM rewards WHERE owner_id = ? AND state = 'active' ORDER BY reward_id",
		ownerID,
	)
	if err != nil {
		return nil, storageErr("listing rewards", err)
	}
	defer rows.Close()

	var rewards []*types.Reward
	for rows.Next() {
		reward := &types.Reward{}
		var state string
		if err := rows.Scan(&reward.ID, &reward.OwnerID, &reward.Name, &reward.Description, &reward.Value, &reward.Completions, &state); err != nil {
			return nil, storageErr("scanning reward", err)
		}
		reward.State = types.Lifecycle(state)
		rewards = append(rewards, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("listing rewards", err)
	}
	return rewards, nil
}

// Update persists name, description, and value for an active reward.
func (t *rewardsTable) Update(reward *types.Reward) error {
	q, err := t.conn()
	if err != nil {
		return err
	}
	if reward.Value < 0 {
		return fmt.Errorf("reward value must not be negative: %w", types.ErrInvalidInput)
	}

	res, err := q.Exec(
		"UPDATE rewards SET name = ?, description = ?, value = ? WHERE reward_id = ? AND owner_id = ? AND state = 'active'",
		reward.Name, reward.Description, reward.Value, reward.ID, reward.OwnerID,
	)
	if err != nil {
		return storageErr("updating reward", err)
	}
	return requireRow(res, reward.ID)
}

// IncrementCompletions bumps the redemption counter by one. The arithmetic
// happens in the database, mirroring AddBalance.
func (t *rewardsTable) IncrementCompletions(ownerID, rewardID int64) error {
	q, err := t.conn()
	if err != nil {
		return err
	}

	res, err := q.Exec(
		"UPDATE rewards SET completions = completions + 1 WHERE reward_id = ? AND owner_id = ? AND state = 'active'",
		rewardID, ownerID,
	)
	if err != nil {
		return storageErr("incrementing completions", err)
	}
	return requireRow(res, rewardID)
}

// SetState writes the lifecycle state. Matches on owner only so restore can
// reach soft-deleted rows.
func (t *rewardsTable) SetState(ownerID, rewardID int64, state types.Lifecycle) error {
	q, err := t.conn()
	if err != nil {
		return err
	}
	if !state.Valid() {
		return types.ErrInvalidState
	}

	res, err := q.Exec(
		"UPDATE rewards SET state = ? WHERE reward_id = ? AND owner_id = ?",
		string(state), rewardID, ownerID,
	)
	if err != nil {
		return storageErr("updating reward state", err)
	}
	return requireRow(res, rewardID)
}

func hydrateReward(row *sql.Row) (*types.Reward, error) {
	reward := &types.Reward{}
	var state string
	if err := row.Scan(&reward.ID, &reward.OwnerID, &reward.Name, &reward.Description, &reward.Value, &reward.Completions, &state); err != nil {
		return nil, err
	}
	reward.State = types.Lifecycle(state)
	return reward, nil
}
