// Package service implements the balance mutator, soft-delete/restore
// manager, and ledger service on top of a types.Store. Every mutating
// operation runs under the owner's lock and inside one atomic unit of work,
// so a user's balance can never drift from the sum of their ledger entries.
package service

import (
	"sync"
	"time"

	"github.com/scorekeep/scorekeep/pkg/types"
)

// Service is the entry point for all balance, lifecycle, and ledger
// operations. The caller resolves an authenticated ownerID externally and
// passes it to each operation; the Service never trusts row IDs alone.
type Service struct {
	store types.Store
	locks ownerLocks

	// now is the clock used for transaction dates. Overridable in tests.
	now func() time.Time

	undoMu sync.Mutex
	undo   map[string]undoEntry
}

// New creates a Service on top of an attached store.
func New(store types.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		undo:  make(map[string]undoEntry),
	}
}
