// Package service wires the roster store and the console shell together.
package service

import (
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/okian/teamsheet/internal/adapters/console"
	"github.com/okian/teamsheet/internal/adapters/repository"
	"github.com/okian/teamsheet/pkg/logger"
)

// Service owns the roster for the lifetime of the process.
type Service struct {
	mu sync.RWMutex

	roster repository.Store

	// Configuration
	maxLineLength int
	showBanner    bool

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxLineLength caps one line of console input.
func WithMaxLineLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLineLength = n
		}
	}
}

// WithBanner toggles the console start-up banner.
func WithBanner(show bool) Option {
	return func(s *Service) {
		s.showBanner = show
	}
}

// WithStore replaces the default in-memory roster.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.roster = store
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxLineLength: console.DefaultMaxLineLength,
		showBanner:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates the roster. Calling it twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.roster == nil {
		s.roster = repository.NewListStore(ctx, repository.WithLogger(s.logger.Named("roster")))
	}

	s.started = true
	s.logger.Info(ctx, "roster service started", logger.Int("maxLineLength", s.maxLineLength))
	return nil
}

// Run drives one console session over in and out until the user quits,
// input ends, or ctx is cancelled.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.mu.RLock()
	started, roster := s.started, s.roster
	s.mu.RUnlock()
	if !started {
		return ErrNotStarted
	}

	session := uuid.NewString()
	s.logger.Info(ctx, "console session started", logger.String("session", session))

	shell := console.NewShell(roster, in, out,
		console.WithLogger(s.logger.Named("console")),
		console.WithMaxLineLength(s.maxLineLength),
		console.WithBanner(s.showBanner),
	)
	if err := shell.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Info(ctx, "console session cancelled", logger.String("session", session))
			return err
		}
		s.logger.Error(ctx, "console session failed", logger.String("session", session), logger.Error(err))
		return errors.Wrapf(err, "session %s", session)
	}

	s.logger.Info(ctx, "console session ended", logger.String("session", session))
	return nil
}

// Roster returns the store backing the service, or nil before Start.
func (s *Service) Roster() repository.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

// Stop releases every roster entry.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.roster.(io.Closer); ok {
		_ = closer.Close()
	} else {
		s.roster.Clear(context.Background())
	}
	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":       s.started,
		"maxLineLength": s.maxLineLength,
	}
	if s.started {
		stats["players"] = s.roster.Len(context.Background())
	}
	return stats
}
