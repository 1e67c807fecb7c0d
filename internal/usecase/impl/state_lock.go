// Package impl contains the implementation of the application's business logic.
package impl

import "sync"

// StateLock serializes read-modify-write cycles against the store so a
// mutation fully persists before any later mutation reads. Plain reads
// do not take it.
type StateLock struct {
	mu sync.Mutex
}

// NewStateLock is the constructor for the shared mutation lock.
func NewStateLock() *StateLock {
	return &StateLock{}
}

func (l *StateLock) Lock()   { l.mu.Lock() }
func (l *StateLock) Unlock() { l.mu.Unlock() }
