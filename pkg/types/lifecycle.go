package types

import "errors"

// Lifecycle is the soft-delete state of a task or reward row. Deleted rows
// stay in storage and are invisible to scoped lookups until restored.
type Lifecycle string

const (
	StateActive  Lifecycle = "active"
	StateDeleted Lifecycle = "deleted"
)

// validLifecycles is the set of recognized lifecycle values.
var validLifecycles = map[Lifecycle]bool{
	StateActive:  true,
	StateDeleted: true,
}

// ErrInvalidState is returned for a lifecycle value outside the known set.
var ErrInvalidState = errors.New("invalid lifecycle state")

// Valid reports whether l is a recognized lifecycle value.
func (l Lifecycle) Valid() bool {
	return validLifecycles[l]
}

// Deleted reports whether the row is soft-deleted.
func (l Lifecycle) Deleted() bool {
	return l == StateDeleted
}
