package repo

import (
	"context"
	"sync"

	"callerverify/internal/services/lookupcache/domain"
)

// Memory is a process local backend for tests and local runs
// it does not survive restarts
type Memory struct {
	mu      sync.Mutex
	entries map[string]domain.Entry
}

// NewMemory constructs an empty memory backend
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]domain.Entry)}
}

// Get implements domain.Repo
func (m *Memory) Get(_ context.Context, phone string, cutoff int64) (domain.Entry, domain.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[phone]
	if !ok {
		return domain.Entry{}, domain.OutcomeMiss, nil
	}
	if e.FetchedAt <= cutoff {
		delete(m.entries, phone)
		return domain.Entry{}, domain.OutcomeEvicted, nil
	}
	return e, domain.OutcomeHit, nil
}

// Put implements domain.Repo
func (m *Memory) Put(_ context.Context, e domain.Entry) error {
	m.mu.Lock()
	m.entries[e.PhoneNumber] = e
	m.mu.Unlock()
	return nil
}

// Purge implements domain.Repo
func (m *Memory) Purge(_ context.Context, cutoff int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for k, e := range m.entries {
		if e.FetchedAt <= cutoff {
			delete(m.entries, k)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored entries, stale ones included
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
