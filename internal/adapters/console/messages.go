package console

import (
	"fmt"
	"io"

	"github.com/okian/teamsheet/internal/domain/player"
)

const (
	banner      = "Personal Team Maintenance Program.\n\n"
	commandList = "Commands are I (insert), D (delete), S (search by name),\n" +
		"  V (search by value), P (print), Q (quit).\n"
)

// Messages renders every user-facing line. The first write error sticks and
// later writes become no-ops; check Err once per command.
type Messages struct {
	w   io.Writer
	err error
}

// NewMessages writes to w.
func NewMessages(w io.Writer) *Messages {
	return &Messages{w: w}
}

// Err returns the first write error, if any.
func (m *Messages) Err() error { return m.err }

func (m *Messages) printf(format string, args ...any) {
	if m.err != nil {
		return
	}
	_, m.err = fmt.Fprintf(m.w, format, args...)
}

// Banner prints the program title and the command list.
func (m *Messages) Banner() {
	m.printf("%s%s", banner, commandList)
}

// Prompt prints s without a trailing newline.
func (m *Messages) Prompt(s string) {
	m.printf("%s", s)
}

// Invalid reminds the user of the command list.
func (m *Messages) Invalid() {
	m.printf("\nInvalid command.\n%s\n", commandList)
}

// Duplicate reports an insert of a family name already present.
func (m *Messages) Duplicate(familyName string) {
	m.printf("\nAn entry for <%s> is already in the team!\nNew entry not entered.\n", familyName)
}

// Found reports a successful search.
func (m *Messages) Found(familyName string) {
	m.printf("\nThe player with family name <%s> was found in the team.\n", familyName)
}

// NotFound reports a search or delete of an absent family name.
func (m *Messages) NotFound(familyName string) {
	m.printf("\nThe player with family name <%s> is not in the team.\n", familyName)
}

// Deleted confirms a delete.
func (m *Messages) Deleted(familyName string) {
	m.printf("\nDeleting player with family name <%s> from the team.\n", familyName)
}

// Empty reports an empty team.
func (m *Messages) Empty() {
	m.printf("\nThe team is empty.\n")
}

// NoneAtMost reports a value search without matches.
func (m *Messages) NoneAtMost(value int) {
	m.printf("\nNo player(s) in the team is worth less than or equal to <%d>.\n", value)
}

// Title heads a full team listing.
func (m *Messages) Title() {
	m.printf("\nMy Team: \n")
}

// Blank prints an empty line.
func (m *Messages) Blank() {
	m.printf("\n")
}

// Player prints one entry, one field per line.
func (m *Messages) Player(p player.Player) {
	m.printf("%s\n%s\n%s\n%d\n", p.FamilyName, p.FirstName, p.Position, p.Value)
}
