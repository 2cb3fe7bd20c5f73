// Package repository holds the roster: players ordered by position rank.
package repository

import (
	"context"
	"iter"

	"github.com/okian/teamsheet/internal/domain/player"
)

// Store provides read/write access to the roster.
//
// Entries are ordered by position rank (G, D, M, S); entries sharing a rank
// keep insertion order. Family names are unique.
type Store interface {
	// Insert adds p after every entry whose rank is <= p's rank.
	// Returns ErrDuplicateKey, leaving the roster untouched, if the family
	// name is already present.
	Insert(ctx context.Context, p player.Player) error

	// Delete removes the entry with exactly this family name.
	// Returns ErrNotFound if there is none.
	Delete(ctx context.Context, familyName string) error

	// Find returns a copy of the entry with this family name.
	// Returns ErrNotFound if there is none.
	Find(ctx context.Context, familyName string) (player.Player, error)

	// AtMost yields every entry with Value <= threshold in roster order.
	// Each range over the sequence rescans the roster.
	AtMost(ctx context.Context, threshold int) iter.Seq[player.Player]

	// All returns every entry in roster order.
	All(ctx context.Context) []player.Player

	// Len returns the number of entries.
	Len(ctx context.Context) int

	// Clear removes every entry.
	Clear(ctx context.Context)
}
