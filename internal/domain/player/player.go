// Package player defines the roster entry and the fixed positional ranking.
package player

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Position is a single-letter playing position code.
type Position byte

// Valid position codes, in rank order.
const (
	Goalkeeper Position = 'G'
	Defender   Position = 'D'
	Midfielder Position = 'M'
	Striker    Position = 'S'
)

// Sentinel kinds for player errors.
var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidPlayer   = errors.New("invalid player")
)

// Rank maps a position to its ordinal: G=0, D=1, M=2, S=3.
// Unknown codes rank -1.
func (p Position) Rank() int {
	switch p {
	case Goalkeeper:
		return 0
	case Defender:
		return 1
	case Midfielder:
		return 2
	case Striker:
		return 3
	default:
		return -1
	}
}

// Valid reports whether p is one of the four position codes.
func (p Position) Valid() bool { return p.Rank() >= 0 }

func (p Position) String() string { return string(rune(p)) }

// ParsePosition reads a position code from the first character of s,
// case-insensitively.
func ParsePosition(s string) (Position, error) {
	if s == "" {
		return 0, errors.Wrap(ErrInvalidPosition, "empty input")
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	p := Position(c)
	if !p.Valid() {
		return 0, errors.Wrapf(ErrInvalidPosition, "%q", s[:1])
	}
	return p, nil
}

// Player is a single roster entry. FamilyName is the roster key.
type Player struct {
	FamilyName string   `validate:"required"`
	Position   Position `validate:"position"`
	FirstName  string
	Value      int
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("position", func(fl validator.FieldLevel) bool {
			return Position(fl.Field().Uint()).Valid()
		})
	})
	return validate
}

// Validate checks the key is present and the position is one of the four codes.
func (p Player) Validate() error {
	if err := getValidator().Struct(p); err != nil {
		return errors.Mark(errors.Wrapf(err, "player %q", p.FamilyName), ErrInvalidPlayer)
	}
	return nil
}

// ParseValue parses a player value the way C atoi does: leading spaces, an
// optional sign, then digits up to the first non-digit. Input without digits
// yields 0. Out-of-range values saturate.
func ParseValue(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var n int
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if neg {
			if n < (math.MinInt+d)/10 {
				return math.MinInt
			}
			n = n*10 - d
		} else {
			if n > (math.MaxInt-d)/10 {
				return math.MaxInt
			}
			n = n*10 + d
		}
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
