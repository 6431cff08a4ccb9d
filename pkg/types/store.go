package types

import "time"

// Store provides typed access to the four record tables plus an atomic
// unit-of-work boundary. The Store handed to an Atomic callback runs every
// operation inside the same storage transaction; a returned error rolls the
// whole unit back so balance, ledger, and row state commit together or not
// at all.
type Store interface {
	Users() UserStore
	Tasks() TaskStore
	Rewards() RewardStore
	Transactions() TransactionStore

	// Atomic runs fn inside a single storage transaction. Nested calls join
	// the enclosing transaction.
	Atomic(fn func(Store) error) error
}

// Backend is a Store with an attach/detach lifecycle.
type Backend interface {
	Store

	// Attach connects to the backend described by config, creating the
	// DataDir if needed. Returns ErrAlreadyAttached on a second call.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// operations return ErrDetached.
	Detach() error
}

// UserStore persists User records.
type UserStore interface {
	// Create inserts a new user with zero balance and returns its ID.
	// A duplicate name fails with ErrInvalidInput.
	Create(user *User) (int64, error)

	// Get retrieves a user by ID. Returns ErrNotFound if absent.
	Get(id int64) (*User, error)

	// AddBalance applies a signed delta to the user's balance in place.
	// Returns ErrNotFound if the user is absent.
	AddBalance(id int64, delta int64) error
}

// TaskStore persists Task records. All scoped lookups exclude soft-deleted
// rows; GetAny is the one path that sees them, used solely by restore.
type TaskStore interface {
	Create(task *Task) (int64, error)

	// Get retrieves an active task scoped to its owner.
	Get(ownerID, taskID int64) (*Task, error)

	// GetAny retrieves a task scoped to its owner regardless of lifecycle
	// state.
	GetAny(ownerID, taskID int64) (*Task, error)

	// ForOwner lists the owner's active tasks.
	ForOwner(ownerID int64) ([]*Task, error)

	// Update persists name, description, due, and value. Ownership,
	// completion, and lifecycle state are not writable through Update.
	Update(task *Task) error

	// SetCompleted flips the completed flag from the observed value to its
	// negation. Returns ErrConflict if the stored flag no longer matches
	// observed, so a lost race never double-applies.
	SetCompleted(ownerID, taskID int64, observed bool) error

	// ForceCompleted writes the completed flag unconditionally.
	ForceCompleted(ownerID, taskID int64, completed bool) error

	// SetState writes the lifecycle state.
	SetState(ownerID, taskID int64, state Lifecycle) error
}

// RewardStore persists Reward records with the same soft-delete scoping
// rules as TaskStore.
type RewardStore interface {
	Create(reward *Reward) (int64, error)
	Get(ownerID, rewardID int64) (*Reward, error)
	GetAny(ownerID, rewardID int64) (*Reward, error)
	ForOwner(ownerID int64) ([]*Reward, error)
	Update(reward *Reward) error

	// IncrementCompletions bumps the redemption counter by one.
	IncrementCompletions(ownerID, rewardID int64) error

	SetState(ownerID, rewardID int64, state Lifecycle) error
}

// TransactionStore persists the append-only ledger. Entries are never
// updated or deleted.
type TransactionStore interface {
	// Append records a transaction, truncating Day to calendar-day
	// granularity, and returns the new ID.
	Append(transaction *Transaction) (int64, error)

	// ForOwner lists the owner's transactions in insertion order.
	ForOwner(ownerID int64) ([]*Transaction, error)

	// Summarize returns per-day totals for the owner, ordered by day, for
	// days >= since. Days without transactions are absent; callers
	// zero-fill gaps themselves.
	Summarize(ownerID int64, since time.Time) ([]DaySummary, error)
}
