package store

import (
	"callerverify/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithMetrics registers backend collectors on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Store) error {
		s.Metrics = reg
		return nil
	}
}
