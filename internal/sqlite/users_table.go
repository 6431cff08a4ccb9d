// This file implements the users table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/scorekeep/scorekeep/pkg/types"
)

// Compile-time interface check: usersTable must implement UserStore.
var _ types.UserStore = (*usersTable)(nil)

// usersTable implements UserStore. A zero q runs in autocommit mode; a
// transaction-bound q comes from Backend.Atomic.
type usersTable struct {
	b *Backend
	q querier
}

func (t *usersTable) conn() (querier, error) {
	if t.q != nil {
		return t.q, nil
	}
	return t.b.querier()
}

// Create inserts a new user with zero balance. The name must be unique;
// the UNIQUE constraint decides, so two concurrent creates of the same name
// cannot both slip past a precheck.
func (t *usersTable) Create(user *types.User) (int64, error) {
	q, err := t.conn()
	if err != nil {
		return 0, err
	}
	if user.Name == "" {
		return 0, fmt.Errorf("user name must not be empty: %w", types.ErrInvalidInput)
	}

	res, err := q.Exec(
		"INSERT INTO users (name, password_hash, balance) VALUES (?, ?, 0)",
		user.Name, user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("user name %q already taken: %w", user.Name, types.ErrInvalidInput)
		}
		return 0, storageErr("inserting user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading user id", err)
	}
	user.ID = id
	user.Balance = 0
	return id, nil
}

// Get retrieves a user by ID. Returns ErrNotFound if absent.
func (t *usersTable) Get(id int64) (*types.User, error) {
	q, err := t.conn()
	if err != nil {
		return nil, err
	}

	user := &types.User{}
	err = q.QueryRow(
		"SELECT user_id, name, password_hash, balance FROM users WHERE user_id = ?", id,
	).Scan(&user.ID, &user.Name, &user.PasswordHash, &user.Balance)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("getting user", err)
	}
	return user, nil
}

// AddBalance applies a signed delta to the stored balance. The arithmetic
// happens in the database so the delta lands on the current row value, not
// on whatever the caller last read.
func (t *usersTable) AddBalance(id int64, delta int64) error {
	q, err := t.conn()
	if err != nil {
		return err
	}

	res, err := q.Exec("UPDATE users SET balance = balance + ? WHERE user_id = ?", delta, id)
	if err != nil {
		return storageErr("updating balance", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("updating balance", err)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, types.ErrNotFound)
	}
	return nil
}
