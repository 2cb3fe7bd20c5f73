package console

import "github.com/okian/teamsheet/pkg/logger"

// Option applies a configuration option to the Shell.
type Option func(*Shell)

// WithLogger sets the logger for command tracing.
func WithLogger(l logger.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxLineLength caps each input line.
func WithMaxLineLength(n int) Option {
	return func(s *Shell) {
		if n > 0 {
			s.maxLineLength = n
		}
	}
}

// WithBanner toggles the start-up banner.
func WithBanner(show bool) Option {
	return func(s *Shell) {
		s.showBanner = show
	}
}
