// Package console drives the roster from an interactive line-oriented terminal.
package console

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/okian/teamsheet/internal/adapters/repository"
	"github.com/okian/teamsheet/internal/domain/player"
	"github.com/okian/teamsheet/pkg/logger"
	"github.com/okian/teamsheet/pkg/metrics"
)

// Prompts.
const (
	promptCommand    = "\nCommand?: "
	promptFamilyName = "  family name: "
	promptFirstName  = "  first name: "
	promptPosition   = "  position: "
	promptValue      = "  value: "
	promptDelete     = "\nEnter family name for entry to delete: "
	promptSearch     = "\nEnter family name to search for: "
	promptThreshold  = "\nEnter value: "

	retryFamilyName = "Family name must not be empty. Please try again. : "
	retryPosition   = "Position entered is not valid. Please try again. : "
)

// errQuit ends the command loop.
var errQuit = errors.New("quit")

// Shell is the command loop. Commands are read as the first character of
// each line, case-insensitive: I, D, S, V, P, Q.
type Shell struct {
	store repository.Store
	out   *Messages
	in    *LineReader

	maxLineLength int
	showBanner    bool
	logger        logger.Logger
}

// NewShell builds a shell reading commands from in and writing to out.
func NewShell(store repository.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:         store,
		out:           NewMessages(out),
		maxLineLength: DefaultMaxLineLength,
		showBanner:    true,
		logger:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.in = NewLineReader(in, s.maxLineLength)
	return s
}

// Run executes commands until Q, end of input, or ctx is cancelled. On the
// way out the roster is cleared and the (now empty) team printed.
func (s *Shell) Run(ctx context.Context) error {
	if s.showBanner {
		s.out.Banner()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.step(ctx)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := s.out.Err(); err != nil {
			metrics.RecordError("console", "write")
			return errors.Wrap(err, "write console output")
		}
	}

	s.store.Clear(ctx)
	s.printTeam(ctx)
	if err := s.out.Err(); err != nil {
		return errors.Wrap(err, "write console output")
	}
	return nil
}

func (s *Shell) step(ctx context.Context) error {
	s.out.Prompt(promptCommand)
	line, err := s.readLine()
	if err != nil {
		return err
	}

	var cmd byte
	if line != "" {
		cmd = line[0]
		if cmd >= 'a' && cmd <= 'z' {
			cmd -= 'a' - 'A'
		}
	}

	switch cmd {
	case 'I':
		err = s.insert(ctx)
	case 'D':
		err = s.delete(ctx)
	case 'S':
		err = s.search(ctx)
	case 'V':
		err = s.searchByValue(ctx)
	case 'P':
		s.printTeam(ctx)
	case 'Q':
		err = errQuit
	default:
		metrics.RecordCommand("invalid")
		s.out.Invalid()
		return nil
	}
	metrics.RecordCommand(string(cmd))
	s.logger.Debug(ctx, "command handled", logger.String("command", string(cmd)))
	return err
}

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		metrics.RecordError("console", "read")
		return "", errors.Wrap(err, "read console input")
	}
	return line, err
}

func (s *Shell) insert(ctx context.Context) error {
	s.out.Prompt(promptFamilyName)
	familyName, err := s.readLine()
	for err == nil && familyName == "" {
		s.out.Prompt(retryFamilyName)
		familyName, err = s.readLine()
	}
	if err != nil {
		return err
	}

	s.out.Prompt(promptFirstName)
	firstName, err := s.readLine()
	if err != nil {
		return err
	}

	s.out.Prompt(promptPosition)
	var pos player.Position
	for {
		line, err := s.readLine()
		if err != nil {
			return err
		}
		if pos, err = player.ParsePosition(line); err == nil {
			break
		}
		s.out.Prompt(retryPosition)
	}

	s.out.Prompt(promptValue)
	valueInput, err := s.readLine()
	if err != nil {
		return err
	}

	p := player.Player{
		FamilyName: familyName,
		FirstName:  firstName,
		Position:   pos,
		Value:      player.ParseValue(valueInput),
	}
	switch err := s.store.Insert(ctx, p); {
	case err == nil:
	case errors.Is(err, repository.ErrDuplicateKey):
		s.out.Duplicate(familyName)
	default:
		return errors.Wrap(err, "insert player")
	}
	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	if s.store.Len(ctx) == 0 {
		s.out.Empty()
		return nil
	}
	s.out.Prompt(promptDelete)
	familyName, err := s.readLine()
	if err != nil {
		return err
	}
	switch err := s.store.Delete(ctx, familyName); {
	case err == nil:
		s.out.Deleted(familyName)
	case errors.Is(err, repository.ErrNotFound):
		s.out.NotFound(familyName)
	default:
		return errors.Wrap(err, "delete player")
	}
	return nil
}

func (s *Shell) search(ctx context.Context) error {
	if s.store.Len(ctx) == 0 {
		s.out.Empty()
		return nil
	}
	s.out.Prompt(promptSearch)
	familyName, err := s.readLine()
	if err != nil {
		return err
	}
	p, err := s.store.Find(ctx, familyName)
	switch {
	case err == nil:
		s.out.Found(familyName)
		s.out.Blank()
		s.out.Player(p)
	case errors.Is(err, repository.ErrNotFound):
		s.out.NotFound(familyName)
	default:
		return errors.Wrap(err, "find player")
	}
	return nil
}

func (s *Shell) searchByValue(ctx context.Context) error {
	if s.store.Len(ctx) == 0 {
		s.out.Empty()
		return nil
	}
	s.out.Prompt(promptThreshold)
	valueInput, err := s.readLine()
	if err != nil {
		return err
	}
	threshold := player.ParseValue(valueInput)

	matches := 0
	for p := range s.store.AtMost(ctx, threshold) {
		s.out.Blank()
		s.out.Player(p)
		matches++
	}
	if matches == 0 {
		s.out.NoneAtMost(threshold)
	}
	return nil
}

func (s *Shell) printTeam(ctx context.Context) {
	team := s.store.All(ctx)
	if len(team) == 0 {
		s.out.Empty()
		return
	}
	s.out.Title()
	s.out.Blank()
	for i, p := range team {
		if i > 0 {
			s.out.Blank()
		}
		s.out.Player(p)
	}
}
