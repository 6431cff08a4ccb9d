// Package types defines the entity types, lifecycle states, store
// interfaces, and standard errors for the scorekeep balance and ledger
// system.
package types
