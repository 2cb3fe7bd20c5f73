package repository

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/okian/teamsheet/internal/domain/player"
	"github.com/okian/teamsheet/pkg/logger"
	"github.com/okian/teamsheet/pkg/metrics"
)

// Linked-list Store implementation.
//
// The list is kept sorted by position rank. A map from family name to node
// answers Find and duplicate checks without walking the list; Insert and
// Delete still walk to find the neighbours to relink.

// node is one list cell. Nodes are never handed out; readers get copies.
type node struct {
	player player.Player
	next   *node
}

// ListStore is an in-memory Store. One RWMutex guards the whole roster, so
// every operation is atomic with respect to the others.
type ListStore struct {
	mu     sync.RWMutex
	head   *node
	byName map[string]*node

	capacityHint int
	logger       logger.Logger
}

// NewListStore constructs an empty roster.
func NewListStore(_ context.Context, opts ...Option) *ListStore {
	s := &ListStore{
		capacityHint: 16,
		logger:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.byName = make(map[string]*node, s.capacityHint)
	metrics.UpdatePlayers(0)
	return s
}

func observe(op string, start time.Time) {
	metrics.RecordOperationLatency(op, float64(time.Since(start).Microseconds())/1000)
}

// Insert implements Store.Insert.
//
// The scan continues while the existing rank is below rank+1, so the new
// entry lands after its own rank's run and before the first higher rank.
func (s *ListStore) Insert(ctx context.Context, p player.Player) error {
	defer observe(metrics.OpInsert, time.Now())

	if err := p.Validate(); err != nil {
		metrics.RecordOperation(metrics.OpInsert, "invalid")
		return err
	}

	s.mu.Lock()
	if _, ok := s.byName[p.FamilyName]; ok {
		s.mu.Unlock()
		metrics.RecordOperation(metrics.OpInsert, "duplicate")
		s.logger.Debug(ctx, "duplicate family name rejected", logger.String("family_name", p.FamilyName))
		return errors.Wrapf(ErrDuplicateKey, "%q", p.FamilyName)
	}

	n := &node{player: p}
	nextRank := p.Position.Rank() + 1
	var prev *node
	cur := s.head
	for cur != nil && cur.player.Position.Rank() < nextRank {
		prev = cur
		cur = cur.next
	}
	n.next = cur
	if prev == nil {
		s.head = n
	} else {
		prev.next = n
	}
	s.byName[p.FamilyName] = n
	count := len(s.byName)
	s.mu.Unlock()

	metrics.RecordOperation(metrics.OpInsert, metrics.OutcomeOK)
	metrics.UpdatePlayers(count)
	s.logger.Debug(ctx, "player inserted",
		logger.String("family_name", p.FamilyName),
		logger.String("position", p.Position.String()),
		logger.Int("players", count),
	)
	return nil
}

// Delete implements Store.Delete.
func (s *ListStore) Delete(ctx context.Context, familyName string) error {
	defer observe(metrics.OpDelete, time.Now())

	s.mu.Lock()
	target, ok := s.byName[familyName]
	if !ok {
		s.mu.Unlock()
		metrics.RecordOperation(metrics.OpDelete, "not_found")
		return errors.Wrapf(ErrNotFound, "%q", familyName)
	}

	if s.head == target {
		s.head = target.next
	} else {
		prev := s.head
		for prev.next != target {
			prev = prev.next
		}
		prev.next = target.next
	}
	target.next = nil
	delete(s.byName, familyName)
	count := len(s.byName)
	s.mu.Unlock()

	metrics.RecordOperation(metrics.OpDelete, metrics.OutcomeOK)
	metrics.UpdatePlayers(count)
	s.logger.Debug(ctx, "player deleted", logger.String("family_name", familyName), logger.Int("players", count))
	return nil
}

// Find implements Store.Find.
func (s *ListStore) Find(_ context.Context, familyName string) (player.Player, error) {
	defer observe(metrics.OpFind, time.Now())

	s.mu.RLock()
	n, ok := s.byName[familyName]
	var p player.Player
	if ok {
		p = n.player
	}
	s.mu.RUnlock()

	if !ok {
		metrics.RecordOperation(metrics.OpFind, "not_found")
		return player.Player{}, errors.Wrapf(ErrNotFound, "%q", familyName)
	}
	metrics.RecordOperation(metrics.OpFind, metrics.OutcomeOK)
	return p, nil
}

// AtMost implements Store.AtMost.
//
// Matches are copied under the read lock before any are yielded, so the loop
// body may call back into the store.
func (s *ListStore) AtMost(_ context.Context, threshold int) iter.Seq[player.Player] {
	return func(yield func(player.Player) bool) {
		start := time.Now()
		s.mu.RLock()
		var matches []player.Player
		for n := s.head; n != nil; n = n.next {
			if n.player.Value <= threshold {
				matches = append(matches, n.player)
			}
		}
		s.mu.RUnlock()
		observe(metrics.OpAtMost, start)

		outcome := metrics.OutcomeOK
		if len(matches) == 0 {
			outcome = "empty"
		}
		metrics.RecordOperation(metrics.OpAtMost, outcome)

		for _, p := range matches {
			if !yield(p) {
				return
			}
		}
	}
}

// All implements Store.All.
func (s *ListStore) All(_ context.Context) []player.Player {
	defer observe(metrics.OpAll, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0, len(s.byName))
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.player)
	}
	metrics.RecordOperation(metrics.OpAll, metrics.OutcomeOK)
	return out
}

// Len implements Store.Len.
func (s *ListStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}

// Clear implements Store.Clear.
func (s *ListStore) Clear(ctx context.Context) {
	defer observe(metrics.OpClear, time.Now())

	s.mu.Lock()
	released := len(s.byName)
	for n := s.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	s.head = nil
	s.byName = make(map[string]*node, s.capacityHint)
	s.mu.Unlock()

	metrics.RecordOperation(metrics.OpClear, metrics.OutcomeOK)
	metrics.UpdatePlayers(0)
	s.logger.Debug(ctx, "roster cleared", logger.Int("released", released))
}

// Close releases every entry. It satisfies io.Closer for the service's
// shutdown path.
func (s *ListStore) Close() error {
	s.Clear(context.Background())
	return nil
}
