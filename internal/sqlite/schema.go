package sqlite

// Schema DDL. SQLite has no native boolean or datetime types: completed is
// an integer 0/1, due is an RFC 3339 string, and transaction days are
// YYYY-MM-DD strings so that day-level grouping and ordering work as plain
// string comparison. There are no FOREIGN KEY clauses: owner integrity is
// the service layer's job, which must be able to observe an orphaned row
// and report it as an internal inconsistency instead of a constraint error.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL DEFAULT '',
    balance INTEGER NOT NULL DEFAULT 0
);`

	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    task_id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    due TEXT NOT NULL,
    value INTEGER NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0,
    state TEXT NOT NULL DEFAULT 'active'
);`

	createRewards = `CREATE TABLE IF NOT EXISTS rewards (
    reward_id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    value INTEGER NOT NULL,
    completions INTEGER NOT NULL DEFAULT 0,
    state TEXT NOT NULL DEFAULT 'active'
);`

	createTransactions = `CREATE TABLE IF NOT EXISTS transactions (
    transaction_id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id INTEGER NOT NULL,
    amount INTEGER NOT NULL,
    day TEXT NOT NULL
);`

	indexTasksOwner        = `CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id, state);`
	indexRewardsOwner      = `CREATE INDEX IF NOT EXISTS idx_rewards_owner ON rewards(owner_id, state);`
	indexTransactionsOwner = `CREATE INDEX IF NOT EXISTS idx_transactions_owner_day ON transactions(owner_id, day);`
)

// schemaStatements lists every DDL statement executed on Attach, in order.
var schemaStatements = []string{
	createUsers,
	createTasks,
	createRewards,
	createTransactions,
	indexTasksOwner,
	indexRewardsOwner,
	indexTransactionsOwner,
}
