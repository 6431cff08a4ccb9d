// This file implements the balance mutator: the state transitions that move
// points between task/reward rows, the owner's balance, and the ledger.
// Each operation is one atomic unit; balance update, ledger append, and row
// update commit together or not at all.
package service

import (
	"errors"
	"fmt"

	"github.com/scorekeep/scorekeep/pkg/types"
)

// CompleteTask marks a task completed, crediting its value to the owner's
// balance and appending a matching ledger entry. Completing an
// already-completed task is a no-op that still returns the current task,
// so double-submits never double-credit.
func (s *Service) CompleteTask(ownerID, taskID int64) (*types.Task, error) {
	defer s.locks.lock(ownerID)()

	var out *types.Task
	err := s.store.Atomic(func(st types.Store) error {
		task, err := st.Tasks().Get(ownerID, taskID)
		if err != nil {
			return err
		}
		if task.Completed {
			out = task
			return nil
		}

		if err := s.requireOwner(st, ownerID); err != nil {
			return err
		}
		if err := st.Users().AddBalance(ownerID, task.Value); err != nil {
			return err
		}
		if _, err := st.Transactions().Append(&types.Transaction{
			OwnerID: ownerID,
			Amount:  task.Value,
			Day:     s.now(),
		}); err != nil {
			return err
		}
		if err := st.Tasks().SetCompleted(ownerID, taskID, false); err != nil {
			return err
		}

		task.Completed = true
		out = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UncompleteTask is the mirror of CompleteTask: it marks a completed task
// uncompleted and reverses the credit. A no-op if already uncompleted.
func (s *Service) UncompleteTask(ownerID, taskID int64) (*types.Task, error) {
	defer s.locks.lock(ownerID)()

	var out *types.Task
	err := s.store.Atomic(func(st types.Store) error {
		task, err := st.Tasks().Get(ownerID, taskID)
		if err != nil {
			return err
		}
		if !task.Completed {
			out = task
			return nil
		}

		if err := s.requireOwner(st, ownerID); err != nil {
			return err
		}
		if err := st.Users().AddBalance(ownerID, -task.Value); err != nil {
			return err
		}
		if _, err := st.Transactions().Append(&types.Transaction{
			OwnerID: ownerID,
			Amount:  -task.Value,
			Day:     s.now(),
		}); err != nil {
			return err
		}
		if err := st.Tasks().SetCompleted(ownerID, taskID, true); err != nil {
			return err
		}

		task.Completed = false
		out = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RefreshTask forces completed=false with no balance or ledger change,
// regardless of prior state. This resets a recurring task without refunding
// the points already earned; it is distinct from UncompleteTask, which
// reverses them.
func (s *Service) RefreshTask(ownerID, taskID int64) (*types.Task, error) {
	defer s.locks.lock(ownerID)()

	var out *types.Task
	err := s.store.Atomic(func(st types.Store) error {
		task, err := st.Tasks().Get(ownerID, taskID)
		if err != nil {
			return err
		}
		if err := st.Tasks().ForceCompleted(ownerID, taskID, false); err != nil {
			return err
		}
		task.Completed = false
		out = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RedeemReward spends the reward's value from the owner's balance and
// increments its completion counter. Every call is a new redemption; there
// is no idempotent state and no inverse operation. The balance may go
// negative; affordability is advisory and enforced, if at all, by the UI.
func (s *Service) RedeemReward(ownerID, rewardID int64) (*types.Reward, error) {
	defer s.locks.lock(ownerID)()

	var out *types.Reward
	err := s.store.Atomic(func(st types.Store) error {
		reward, err := st.Rewards().Get(ownerID, rewardID)
		if err != nil {
			return err
		}

		if err := s.requireOwner(st, ownerID); err != nil {
			return err
		}
		if err := st.Users().AddBalance(ownerID, -reward.Value); err != nil {
			return err
		}
		if _, err := st.Transactions().Append(&types.Transaction{
			OwnerID: ownerID,
			Amount:  -reward.Value,
			Day:     s.now(),
		}); err != nil {
			return err
		}
		if err := st.Rewards().IncrementCompletions(ownerID, rewardID); err != nil {
			return err
		}

		reward.Completions++
		out = reward
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// requireOwner verifies the owner's user record still exists. A valid
// session whose user row has vanished is an internal inconsistency, never a
// silent skip of the balance update.
func (s *Service) requireOwner(st types.Store, ownerID int64) error {
	if _, err := st.Users().Get(ownerID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("owner %d has no user record: %w", ownerID, types.ErrInternalInconsistency)
		}
		return err
	}
	return nil
}
