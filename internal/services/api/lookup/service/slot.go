package service

import (
	"sync"

	"callerverify/internal/services/api/lookup/domain"
)

// Slot holds the last resolved lookup
// every successful lookup overwrites it, including lookups that found no name
// failed lookups leave it untouched
type Slot struct {
	mu  sync.RWMutex
	val domain.LastResolved
	set bool
}

// Store overwrites the slot
func (s *Slot) Store(v domain.LastResolved) {
	s.mu.Lock()
	s.val, s.set = v, true
	s.mu.Unlock()
}

// Load returns the slot value and whether a lookup has happened yet
func (s *Slot) Load() (domain.LastResolved, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.val, s.set
}
