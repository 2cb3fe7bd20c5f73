package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/okian/teamsheet/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

// transcript helpers mirror what the shell prints.
func cmd() string { return promptCommand }

func insertPrompts(positionRetries int) string {
	return promptFamilyName + promptFirstName + promptPosition +
		strings.Repeat(retryPosition, positionRetries) + promptValue
}

func entry(family, first, pos, value string) string {
	return family + "\n" + first + "\n" + pos + "\n" + value + "\n"
}

const emptyTeam = "\nThe team is empty.\n"

func runShell(input string, opts ...Option) (string, *repository.ListStore, error) {
	ctx := context.Background()
	store := repository.NewListStore(ctx)
	var out bytes.Buffer
	opts = append([]Option{WithBanner(false)}, opts...)
	err := NewShell(store, strings.NewReader(input), &out, opts...).Run(ctx)
	return out.String(), store, err
}

func TestShell_InsertAndPrint(t *testing.T) {
	Convey("Given three inserts followed by print and quit", t, func() {
		input := "I\nSmith\nJohn\ng\n100\n" +
			"i\nJones\nJim\nD\n200\n" +
			"I\nDoe\nJane\ngoalie\n50\n" +
			"p\nQ\n"
		out, store, err := runShell(input)

		Convey("Then the team prints in rank order with insertion order kept", func() {
			So(err, ShouldBeNil)
			want := cmd() + insertPrompts(0) +
				cmd() + insertPrompts(0) +
				cmd() + insertPrompts(0) +
				cmd() + "\nMy Team: \n\n" +
				entry("Smith", "John", "G", "100") + "\n" +
				entry("Doe", "Jane", "G", "50") + "\n" +
				entry("Jones", "Jim", "D", "200") +
				cmd() + emptyTeam
			So(out, ShouldEqual, want)
		})

		Convey("And the roster is released on quit", func() {
			So(store.Len(context.Background()), ShouldEqual, 0)
		})
	})
}

func TestShell_Banner(t *testing.T) {
	Convey("Given the default options", t, func() {
		ctx := context.Background()
		var out bytes.Buffer
		err := NewShell(repository.NewListStore(ctx), strings.NewReader("q\n"), &out).Run(ctx)

		Convey("Then the banner and command list come first", func() {
			So(err, ShouldBeNil)
			So(out.String(), ShouldEqual, banner+commandList+cmd()+emptyTeam)
		})
	})
}

func TestShell_InsertRetries(t *testing.T) {
	Convey("Given an insert with an empty family name and bad positions", t, func() {
		input := "I\n\nSmith\nJohn\nx\n\nm\nabc\nP\nQ\n"
		out, _, err := runShell(input)

		Convey("Then the shell re-prompts until the input is usable", func() {
			So(err, ShouldBeNil)
			want := cmd() + promptFamilyName + retryFamilyName + promptFirstName + promptPosition +
				retryPosition + retryPosition + promptValue +
				cmd() + "\nMy Team: \n\n" + entry("Smith", "John", "M", "0") +
				cmd() + emptyTeam
			So(out, ShouldEqual, want)
		})
	})
}

func TestShell_Duplicate(t *testing.T) {
	Convey("Given two inserts with the same family name", t, func() {
		input := "I\nSmith\nJohn\nG\n1\nI\nSmith\nOther\nS\n2\nP\nQ\n"
		out, _, err := runShell(input)

		Convey("Then the second is rejected and the first kept", func() {
			So(err, ShouldBeNil)
			want := cmd() + insertPrompts(0) +
				cmd() + insertPrompts(0) +
				"\nAn entry for <Smith> is already in the team!\nNew entry not entered.\n" +
				cmd() + "\nMy Team: \n\n" + entry("Smith", "John", "G", "1") +
				cmd() + emptyTeam
			So(out, ShouldEqual, want)
		})
	})
}

func TestShell_EmptyRoster(t *testing.T) {
	Convey("Given commands against an empty roster", t, func() {
		out, _, err := runShell("D\nS\nV\nP\nQ\n")

		Convey("Then each reports the empty team without prompting", func() {
			So(err, ShouldBeNil)
			So(out, ShouldEqual, strings.Repeat(cmd()+emptyTeam, 4)+cmd()+emptyTeam)
		})
	})
}

func TestShell_DeleteAndSearch(t *testing.T) {
	Convey("Given a roster with one player", t, func() {
		setup := "I\nSmith\nJohn\nD\n100\n"
		setupOut := cmd() + insertPrompts(0)

		Convey("When searching for present and absent names", func() {
			out, _, err := runShell(setup + "S\nSmith\ns\nsmith\nQ\n")

			So(err, ShouldBeNil)
			So(out, ShouldEqual, setupOut+
				cmd()+promptSearch+"\nThe player with family name <Smith> was found in the team.\n\n"+entry("Smith", "John", "D", "100")+
				cmd()+promptSearch+"\nThe player with family name <smith> is not in the team.\n"+
				cmd()+emptyTeam)
		})

		Convey("When deleting an absent name then the player", func() {
			out, _, err := runShell(setup + "D\nJones\nD\nSmith\nP\nQ\n")

			So(err, ShouldBeNil)
			So(out, ShouldEqual, setupOut+
				cmd()+promptDelete+"\nThe player with family name <Jones> is not in the team.\n"+
				cmd()+promptDelete+"\nDeleting player with family name <Smith> from the team.\n"+
				cmd()+emptyTeam+
				cmd()+emptyTeam)
		})
	})
}

func TestShell_SearchByValue(t *testing.T) {
	Convey("Given a roster of three players", t, func() {
		setup := "I\nSmith\nJohn\nG\n100\nI\nJones\nJim\nD\n200\nI\nDoe\nJane\nG\n50\n"
		setupOut := strings.Repeat(cmd()+insertPrompts(0), 3)

		Convey("When the threshold matches some players", func() {
			out, _, err := runShell(setup + "V\n100\nQ\n")

			So(err, ShouldBeNil)
			So(out, ShouldEqual, setupOut+
				cmd()+promptThreshold+
				"\n"+entry("Smith", "John", "G", "100")+
				"\n"+entry("Doe", "Jane", "G", "50")+
				cmd()+emptyTeam)
		})

		Convey("When nothing is cheap enough", func() {
			out, _, err := runShell(setup + "V\n49\nV\nabc\nQ\n")

			So(err, ShouldBeNil)
			So(out, ShouldEqual, setupOut+
				cmd()+promptThreshold+"\nNo player(s) in the team is worth less than or equal to <49>.\n"+
				cmd()+promptThreshold+"\nNo player(s) in the team is worth less than or equal to <0>.\n"+
				cmd()+emptyTeam)
		})
	})
}

func TestShell_InvalidCommand(t *testing.T) {
	Convey("Given unknown and empty command lines", t, func() {
		out, _, err := runShell("x\n\nQ\n")

		Convey("Then the usage reminder is printed for each", func() {
			So(err, ShouldBeNil)
			invalid := "\nInvalid command.\n" + commandList + "\n"
			So(out, ShouldEqual, cmd()+invalid+cmd()+invalid+cmd()+emptyTeam)
		})
	})
}

func TestShell_EndOfInput(t *testing.T) {
	Convey("Given input that ends without Q", t, func() {
		out, store, err := runShell("I\nSmith\nJohn\nG\n1\n")

		Convey("Then end of input quits cleanly", func() {
			So(err, ShouldBeNil)
			So(out, ShouldEqual, cmd()+insertPrompts(0)+cmd()+emptyTeam)
			So(store.Len(context.Background()), ShouldEqual, 0)
		})
	})

	Convey("Given input that ends in the middle of an insert", t, func() {
		out, _, err := runShell("I\nSmith\n")

		Convey("Then the partial insert is dropped", func() {
			So(err, ShouldBeNil)
			So(out, ShouldEqual, cmd()+promptFamilyName+promptFirstName+emptyTeam)
		})
	})
}

func TestShell_LineCap(t *testing.T) {
	Convey("Given a short line cap", t, func() {
		out, _, err := runShell("I\nAbcdefgh\nJo\nS\n1\nP\nQ\n", WithMaxLineLength(4))

		Convey("Then long fields are truncated", func() {
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, entry("Abcd", "Jo", "S", "1"))
		})
	})
}

func TestShell_Cancelled(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out bytes.Buffer
		err := NewShell(repository.NewListStore(ctx), strings.NewReader("P\n"), &out, WithBanner(false)).Run(ctx)

		Convey("Then the loop stops before reading", func() {
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(out.Len(), ShouldEqual, 0)
		})
	})
}

func TestShell_WriteFailure(t *testing.T) {
	Convey("Given an output that rejects writes", t, func() {
		ctx := context.Background()
		err := NewShell(repository.NewListStore(ctx), strings.NewReader("P\nQ\n"), &failingWriter{}).Run(ctx)

		Convey("Then Run reports the write error", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "broken pipe")
		})
	})
}
