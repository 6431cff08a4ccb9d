package types

import "errors"

// Operation errors. Each maps to a distinct caller-visible outcome, so the
// service layer surfaces them unmodified; lower layers wrap them with %w.
var (
	// ErrNotFound means the row is absent, owned by someone else, or
	// soft-deleted. The three cases are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput means a creation-path validation failed, such as a
	// negative point value or a duplicate user name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict means a concurrent mutation won the race; the caller must
	// re-read fresh state before retrying.
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrStorage means the underlying store rejected an operation. The whole
	// unit of work is rolled back; no partial write is observable.
	ErrStorage = errors.New("storage failure")

	// ErrInternalInconsistency means an owner's user record vanished in the
	// middle of an operation. Fatal for the request, not for the process.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)

// Store lifecycle errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
