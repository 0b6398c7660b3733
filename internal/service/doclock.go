package service

import (
	"sync"

	"github.com/google/uuid"
)

// DocLocker serializes mutations per document id. Every registry, workflow,
// and signature mutation for a given document runs under its lock; reads do
// not take it. Operations on distinct documents proceed in parallel.
type DocLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*docLock
}

// docLock is one document's mutex plus the number of holders and waiters.
// The entry is dropped from the registry once the last of them releases, so
// the map does not grow with every document id ever touched.
type docLock struct {
	mu   sync.Mutex
	refs int
}

// NewDocLocker creates an empty per-document lock registry.
func NewDocLocker() *DocLocker {
	return &DocLocker{locks: map[uuid.UUID]*docLock{}}
}

// Lock acquires the mutex for the given document id and returns the
// corresponding unlock function.
func (l *DocLocker) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &docLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
