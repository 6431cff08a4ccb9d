// This file implements the creation and edit paths that touch consistency:
// value validation happens here, and none of these operations ever append a
// ledger entry. Only completion transitions move balance.
package service

import (
	"fmt"
	"time"

	"github.com/scorekeep/scorekeep/pkg/types"
)

// CreateUser creates a user with zero balance. The password hash is opaque
// to this core and stored as given.
func (s *Service) CreateUser(name, passwordHash string) (*types.User, error) {
	user := &types.User{Name: name, PasswordHash: passwordHash}
	if _, err := s.store.Users().Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user, including the authoritative balance.
func (s *Service) GetUser(id int64) (*types.User, error) {
	return s.store.Users().Get(id)
}

// CreateTask creates an uncompleted, active task. A negative value is
// rejected here so the mutator can trust stored values.
func (s *Service) CreateTask(ownerID int64, name, description string, due time.Time, value int64) (*types.Task, error) {
	if value < 0 {
		return nil, fmt.Errorf("task value %d: %w", value, types.ErrInvalidInput)
	}
	task := &types.Task{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Due:         due,
		Value:       value,
	}
	if _, err := s.store.Tasks().Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// CreateReward creates a reward with zero completions.
func (s *Service) CreateReward(ownerID int64, name, description string, value int64) (*types.Reward, error) {
	if value < 0 {
		return nil, fmt.Errorf("reward value %d: %w", value, types.ErrInvalidInput)
	}
	reward := &types.Reward{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Value:       value,
	}
	if _, err := s.store.Rewards().Create(reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// UpdateTask edits name, description, due, and value. Changing value never
// rewrites past ledger entries; it only changes future deltas.
func (s *Service) UpdateTask(ownerID, taskID int64, name, description string, due time.Time, value int64) (*types.Task, error) {
	defer s.locks.lock(ownerID)()

	var out *types.Task
	err := s.store.Atomic(func(st types.Store) error {
		task, err := st.Tasks().Get(ownerID, taskID)
		if err != nil {
			return err
		}
		task.Name = name
		task.Description = description
		task.Due = due
		task.Value = value
		if err := st.Tasks().Update(task); err != nil {
			return err
		}
		out = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateReward edits name, description, and value.
func (s *Service) UpdateReward(ownerID, rewardID int64, name, description string, value int64) (*types.Reward, error) {
	defer s.locks.lock(ownerID)()

	var out *types.Reward
	err := s.store.Atomic(func(st types.Store) error {
		reward, err := st.Rewards().Get(ownerID, rewardID)
		if err != nil {
			return err
		}
		reward.Name = name
		reward.Description = description
		reward.Value = value
		if err := st.Rewards().Update(reward); err != nil {
			return err
		}
		out = reward
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TasksForOwner lists the owner's active tasks; soft-deleted rows are
// filtered out.
func (s *Service) TasksForOwner(ownerID int64) ([]*types.Task, error) {
	return s.store.Tasks().ForOwner(ownerID)
}

// RewardsForOwner lists the owner's active rewards.
func (s *Service) RewardsForOwner(ownerID int64) ([]*types.Reward, error) {
	return s.store.Rewards().ForOwner(ownerID)
}

// GetTask retrieves one active task scoped to its owner.
func (s *Service) GetTask(ownerID, taskID int64) (*types.Task, error) {
	return s.store.Tasks().Get(ownerID, taskID)
}

// GetReward retrieves one active reward scoped to its owner.
func (s *Service) GetReward(ownerID, rewardID int64) (*types.Reward, error) {
	return s.store.Rewards().Get(ownerID, rewardID)
}
