// This file implements the soft-delete/restore manager. Deleting never
// touches balance: points earned or spent through a row are not clawed back
// when the row is hidden.
package service

import (
	"github.com/google/uuid"

	"github.com/scorekeep/scorekeep/pkg/types"
)

// undoEntry remembers one delete so a client can undo it within the
// session. Tokens live only as long as the Service instance.
type undoEntry struct {
	ownerID int64
	taskID  int64 // zero when the entry is a reward
	reward  int64 // zero when the entry is a task
}

// DeleteTask soft-deletes a task and returns the pre-deletion snapshot plus
// an undo token. The snapshot lets callers offer "undo" with the exact row
// state; the token feeds Undo.
func (s *Service) DeleteTask(ownerID, taskID int64) (*types.Task, string, error) {
	defer s.locks.lock(ownerID)()

	var snapshot *types.Task
	err := s.store.Atomic(func(st types.Store) error {
		task, err := st.Tasks().Get(ownerID, taskID)
		if err != nil {
			return err
		}
		if err := st.Tasks().SetState(ownerID, taskID, types.StateDeleted); err != nil {
			return err
		}
		snapshot = task
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return snapshot, s.registerUndo(undoEntry{ownerID: ownerID, taskID: taskID}), nil
}

// DeleteReward soft-deletes a reward; same contract as DeleteTask.
func (s *Service) DeleteReward(ownerID, rewardID int64) (*types.Reward, string, error) {
	defer s.locks.lock(ownerID)()

	var snapshot *types.Reward
	err := s.store.Atomic(func(st types.Store) error {
		reward, err := st.Rewards().Get(ownerID, rewardID)
		if err != nil {
			return err
		}
		if err := st.Rewards().SetState(ownerID, rewardID, types.StateDeleted); err != nil {
			return err
		}
		snapshot = reward
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return snapshot, s.registerUndo(undoEntry{ownerID: ownerID, reward: rewardID}), nil
}

// RestoreTask makes a soft-deleted task visible again, with state identical
// to just before deletion. This is the one path allowed to look up deleted
// rows by id.
func (s *Service) RestoreTask(ownerID, taskID int64) (*types.Task, error) {
	defer s.locks.lock(ownerID)()

	var out *types.Task
	err := s.store.Atomic(func(st types.Store) error {
		task, err := st.Tasks().GetAny(ownerID, taskID)
		if err != nil {
			return err
		}
		if err := st.Tasks().SetState(ownerID, taskID, types.StateActive); err != nil {
			return err
		}
		task.State = types.StateActive
		out = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RestoreReward makes a soft-deleted reward visible again.
func (s *Service) RestoreReward(ownerID, rewardID int64) (*types.Reward, error) {
	defer s.locks.lock(ownerID)()

	var out *types.Reward
	err := s.store.Atomic(func(st types.Store) error {
		reward, err := st.Rewards().GetAny(ownerID, rewardID)
		if err != nil {
			return err
		}
		if err := st.Rewards().SetState(ownerID, rewardID, types.StateActive); err != nil {
			return err
		}
		reward.State = types.StateActive
		out = reward
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Undo restores whatever the token's delete removed. A token is single-use
// and invalid once the Service instance is gone. Returns ErrNotFound for an
// unknown or spent token.
func (s *Service) Undo(token string) error {
	s.undoMu.Lock()
	entry, ok := s.undo[token]
	if ok {
		delete(s.undo, token)
	}
	s.undoMu.Unlock()

	if !ok {
		return types.ErrNotFound
	}
	if entry.taskID != 0 {
		_, err := s.RestoreTask(entry.ownerID, entry.taskID)
		return err
	}
	_, err := s.RestoreReward(entry.ownerID, entry.reward)
	return err
}

// registerUndo stores an undo entry under a fresh token.
func (s *Service) registerUndo(entry undoEntry) string {
	token := uuid.NewString()
	s.undoMu.Lock()
	s.undo[token] = entry
	s.undoMu.Unlock()
	return token
}
