package types

// Reward is something the owner can spend balance on. Each redemption
// debits Value from the owner's balance and increments Completions. There
// is no inverse operation; a redemption is final.
type Reward struct {
	ID          int64     `json:"reward_id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Value       int64     `json:"value"` // non-negative, enforced at creation
	Completions int64     `json:"completions"`
	State       Lifecycle `json:"state"`
}
