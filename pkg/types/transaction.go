package types

import "time"

// Transaction is one immutable entry in the append-only balance ledger.
// Amount is signed: task completions append positive amounts, task
// un-completions and reward redemptions negative ones. Day carries calendar
// day granularity only; many transactions may share an (owner, day) pair.
type Transaction struct {
	ID      int64     `json:"transaction_id"`
	OwnerID int64     `json:"owner_id"`
	Amount  int64     `json:"amount"`
	Day     time.Time `json:"day"`
}

// DaySummary is the net balance change for an owner on a single day.
type DaySummary struct {
	Day   time.Time `json:"day"`
	Total int64     `json:"total"`
}

// DayOf truncates t to midnight of its calendar day, keeping the location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
