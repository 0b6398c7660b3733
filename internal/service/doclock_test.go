package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDocLocker_SerializesPerDocument(t *testing.T) {
	locker := NewDocLocker()
	docID := uuid.New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(docID)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestDocLocker_IndependentDocuments(t *testing.T) {
	locker := NewDocLocker()

	unlockA := locker.Lock(uuid.New())
	defer unlockA()

	// A second document's lock is not blocked by the first.
	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock(uuid.New())
		unlockB()
		close(done)
	}()
	<-done
}

func TestDocLocker_ReleasesEntries(t *testing.T) {
	locker := NewDocLocker()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		docID := uuid.New()
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(docID)
			unlock()
		}()
	}
	wg.Wait()

	// Entries are refcounted away once the last holder releases.
	locker.mu.Lock()
	remaining := len(locker.locks)
	locker.mu.Unlock()
	assert.Equal(t, 0, remaining)

	// A contended id is also dropped after all waiters pass through.
	docID := uuid.New()
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(docID)
			unlock()
		}()
	}
	wg.Wait()

	locker.mu.Lock()
	remaining = len(locker.locks)
	locker.mu.Unlock()
	assert.Equal(t, 0, remaining)
}
