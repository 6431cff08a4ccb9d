package types

// User is an account holder. Balance is the single source of truth for
// currently spendable value and must equal the sum of the user's transaction
// amounts; it is only ever changed together with a ledger append.
type User struct {
	ID           int64  `json:"user_id"`
	Name         string `json:"name"`          // unique
	PasswordHash string `json:"-"`             // opaque to this core
	Balance      int64  `json:"balance"`
}
