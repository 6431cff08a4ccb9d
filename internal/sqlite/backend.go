// Package sqlite implements the scorekeep storage backend on SQLite.
// The database file is the source of truth: user balance rows and the
// append-only transaction ledger are written inside the same SQL
// transaction, so a crash can never leave one without the other.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/scorekeep/scorekeep/pkg/types"
)

// DatabaseFile is the name of the SQLite file inside DataDir.
const DatabaseFile = "scorekeep.db"

// dsnOptions is appended to every database path. Transactions take the
// write lock up front (BEGIN IMMEDIATE) and writers wait out a held lock
// instead of failing with SQLITE_BUSY, so operations from different owners
// queue at the database rather than erroring against each other.
const dsnOptions = "?_txlock=immediate&_pragma=busy_timeout(5000)"

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Table accessors run against a querier, so the same code serves both
// autocommit calls and calls inside an atomic unit of work.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Compile-time interface check: Backend must implement types.Backend.
var _ types.Backend = (*Backend)(nil)

// Backend implements types.Backend using a single SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the database under config.DataDir and applies
// the schema. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return storageErr("creating data dir", err)
	}

	db, err := sql.Open("sqlite", "file:"+filepath.Join(dataDir, DatabaseFile)+dsnOptions)
	if err != nil {
		return storageErr("opening database", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return storageErr("applying schema", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent: multiple calls succeed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return storageErr("closing database", err)
	}
	return nil
}

// Users returns the user table accessor.
func (b *Backend) Users() types.UserStore { return &usersTable{b: b} }

// Tasks returns the task table accessor.
func (b *Backend) Tasks() types.TaskStore { return &tasksTable{b: b} }

// Rewards returns the reward table accessor.
func (b *Backend) Rewards() types.RewardStore { return &rewardsTable{b: b} }

// Transactions returns the ledger table accessor.
func (b *Backend) Transactions() types.TransactionStore { return &transactionsTable{b: b} }

// Atomic runs fn against a Store bound to a single SQL transaction. An error
// from fn rolls the transaction back and is returned unmodified, so sentinel
// errors survive the boundary.
func (b *Backend) Atomic(fn func(types.Store) error) error {
	b.mu.RLock()
	attached, db := b.attached, b.db
	b.mu.RUnlock()

	if !attached {
		return types.ErrDetached
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErr("beginning transaction", err)
	}

	if err := fn(&txStore{b: b, tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return storageErr("committing transaction", err)
	}
	return nil
}

// querier returns the autocommit querier, or ErrDetached.
func (b *Backend) querier() (querier, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.db, nil
}

// txStore is the Store view handed to Atomic callbacks. Its table accessors
// are bound to the enclosing transaction.
type txStore struct {
	b  *Backend
	tx *sql.Tx
}

func (s *txStore) Users() types.UserStore               { return &usersTable{b: s.b, q: s.tx} }
func (s *txStore) Tasks() types.TaskStore               { return &tasksTable{b: s.b, q: s.tx} }
func (s *txStore) Rewards() types.RewardStore           { return &rewardsTable{b: s.b, q: s.tx} }
func (s *txStore) Transactions() types.TransactionStore { return &transactionsTable{b: s.b, q: s.tx} }

// Atomic on a txStore joins the enclosing transaction.
func (s *txStore) Atomic(fn func(types.Store) error) error {
	return fn(s)
}

// storageErr wraps a driver error so callers can match types.ErrStorage
// while keeping the underlying cause in the chain.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(types.ErrStorage, err))
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
