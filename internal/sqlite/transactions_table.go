// This file implements the transactions table accessor for the SQLite
// backend. The ledger is append-only: there is no update or delete path,
// and none may be added.
package sqlite

import (
	"fmt"
	"time"

	"github.com/scorekeep/scorekeep/pkg/types"
)

var _ types.TransactionStore = (*transactionsTable)(nil)

// dayFormat is the stored representation of a calendar day. Lexicographic
// order equals chronological order, so GROUP BY and ORDER BY work on the
// raw column.
const dayFormat = "2006-01-02"

type transactionsTable struct {
	b *Backend
	q querier
}

func (t *transactionsTable) conn() (querier, error) {
	if t.q != nil {
		return t.q, nil
	}
	return t.b.querier()
}

// Append records a transaction, truncating Day to calendar-day granularity
// so same-day entries aggregate.
func (t *transactionsTable) Append(transaction *types.Transaction) (int64, error) {
	q, err := t.conn()
	if err != nil {
		return 0, err
	}

	day := types.DayOf(transaction.Day)
	res, err := q.Exec(
		"INSERT INTO transactions (owner_id, amount, day) VALUES (?, ?, ?)",
		transaction.OwnerID, transaction.Amount, day.Format(dayFormat),
	)
	if err != nil {
		return 0, storageErr("appending transaction", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("reading transaction id", err)
	}
	transaction.ID = id
	transaction.Day = day
	return id, nil
}

// ForOwner lists the owner's transactions in insertion order.
func (t *transactionsTable) ForOwner(ownerID int64) ([]*types.Transaction, error) {
	q, err := t.conn()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(
		"SELECT transaction_id, owner_id, amount, day FROM transactions WHERE owner_id = ? ORDER BY transaction_id",
		ownerID,
	)
	if err != nil {
		return nil, storageErr("listing transactions", err)
	}
	defer rows.Close()

	var transactions []*types.Transaction
	for rows.Next() {
		tr := &types.Transaction{}
		var day string
		if err := rows.Scan(&tr.ID, &tr.OwnerID, &tr.Amount, &day); err != nil {
			return nil, storageErr("scanning transaction", err)
		}
		parsed, err := time.ParseInLocation(dayFormat, day, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing transaction day: %w", err)
		}
		tr.Day = parsed
		transactions = append(transactions, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("listing transactions", err)
	}
	return transactions, nil
}

// Summarize returns per-day totals for the owner, ordered by day, for days
// on or after since. Days with no transactions are absent from the result.
func (t *transactionsTable) Summarize(ownerID int64, since time.Time) ([]types.DaySummary, error) {
	q, err := t.conn()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(
		"SELECT day, SUM(amount) AS total FROM transactions WHERE owner_id = ? AND day >= ? GROUP BY day ORDER BY day",
		ownerID, types.DayOf(since).Format(dayFormat),
	)
	if err != nil {
		return nil, storageErr("summarizing transactions", err)
	}
	defer rows.Close()

	var summaries []types.DaySummary
	for rows.Next() {
		var day string
		var total int64
		if err := rows.Scan(&day, &total); err != nil {
			return nil, storageErr("scanning summary", err)
		}
		parsed, err := time.ParseInLocation(dayFormat, day, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing summary day: %w", err)
		}
		summaries = append(summaries, types.DaySummary{Day: parsed, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("summarizing transactions", err)
	}
	return summaries, nil
}
