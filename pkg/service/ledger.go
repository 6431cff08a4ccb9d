// This file exposes the ledger service: read access to the append-only
// transaction log and its day-bucketed summaries.
package service

import (
	"time"

	"github.com/scorekeep/scorekeep/pkg/types"
)

// Record appends a transaction outside the usual mutator flows, truncating
// when to its calendar day. The mutator operations append their own entries
// inside their atomic units; Record exists for callers that manage their
// own balance writes and still owe the ledger an entry.
func (s *Service) Record(ownerID int64, amount int64, when time.Time) (*types.Transaction, error) {
	tr := &types.Transaction{OwnerID: ownerID, Amount: amount, Day: when}
	if _, err := s.store.Transactions().Append(tr); err != nil {
		return nil, err
	}
	return tr, nil
}

// Summarize returns the owner's per-day net balance change, ordered by day,
// for days on or after since. The result is sparse: days without
// transactions are absent, and callers zero-fill any fixed window
// themselves.
func (s *Service) Summarize(ownerID int64, since time.Time) ([]types.DaySummary, error) {
	return s.store.Transactions().Summarize(ownerID, since)
}

// Transactions lists the owner's full ledger in insertion order, for the
// stats view.
func (s *Service) Transactions(ownerID int64) ([]*types.Transaction, error) {
	return s.store.Transactions().ForOwner(ownerID)
}
