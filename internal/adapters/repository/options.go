package repository

import "github.com/okian/teamsheet/pkg/logger"

// Option applies a configuration option to the ListStore.
type Option func(*ListStore)

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l logger.Logger) Option {
	return func(s *ListStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCapacityHint pre-sizes the family name index.
func WithCapacityHint(n int) Option {
	return func(s *ListStore) {
		if n > 0 {
			s.capacityHint = n
		}
	}
}
