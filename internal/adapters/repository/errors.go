package repository

import "github.com/cockroachdb/errors"

// Sentinel kinds for roster errors.
var (
	ErrDuplicateKey = errors.New("family name already on the roster")
	ErrNotFound     = errors.New("family name not on the roster")
)
