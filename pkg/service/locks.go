package service

import "sync"

// ownerLocks serializes mutations per owner. Two concurrent completions of
// the same task would otherwise both observe completed=false and both
// credit balance; the per-owner lock makes each operation's
// read-compute-write sequence exclusive. Different owners never contend.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// lock acquires the mutex for ownerID, creating it on first use, and
// returns the matching unlock function.
func (l *ownerLocks) lock(ownerID int64) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[int64]*sync.Mutex)
	}
	m, ok := l.locks[ownerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[ownerID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
