// Package directory binds the verifier's Directory port to a static table or a remote users API
package directory

import (
	"context"
	"slices"

	"callerverify/internal/services/api/verify/domain"
)

// DefaultRecords is the seed table served by the mock binding
func DefaultRecords() []domain.Record {
	return []domain.Record{
		{PhoneNumber: "+15551234567", ClaimedName: "John Doe"},
		{PhoneNumber: "+15557654321", ClaimedName: "Jane Smith"},
	}
}

// Static is an ordered in-memory directory
type Static struct {
	records []domain.Record
	index   map[string]int
}

// NewStatic builds a static directory; the first record wins on duplicate numbers
func NewStatic(records []domain.Record) *Static {
	s := &Static{records: slices.Clone(records), index: make(map[string]int, len(records))}
	for i, r := range s.records {
		if _, dup := s.index[r.PhoneNumber]; !dup {
			s.index[r.PhoneNumber] = i
		}
	}
	return s
}

// ListRecords implements domain.Directory
func (s *Static) ListRecords(context.Context) ([]domain.Record, error) {
	return slices.Clone(s.records), nil
}

// GetRecord implements domain.Directory
func (s *Static) GetRecord(_ context.Context, phone string) (domain.Record, bool, error) {
	i, ok := s.index[phone]
	if !ok {
		return domain.Record{}, false, nil
	}
	return s.records[i], true, nil
}
