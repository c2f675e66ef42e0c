package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a single editor command emitted by the dispatcher.
type Command struct {
	// Name identifies the action, e.g. "cursor.moveLeft".
	Name string

	// Char is the captured character for character-parameterized commands.
	Char rune

	// Char2 is the second character for two-character commands
	// (surround replace carries the old and new delimiter).
	Char2 rune

	// Text is the free-form argument of typable commands.
	Text string

	// Count is a numeric argument (scroll distance, history steps).
	Count int
}

// New creates a parameterless command.
func New(name string) Command {
	return Command{Name: name}
}

// WithChar creates a command carrying one character.
func WithChar(name string, ch rune) Command {
	return Command{Name: name, Char: ch}
}

// WithCount creates a command carrying a count.
func WithCount(name string, n int) Command {
	return Command{Name: name, Count: n}
}

// IsZero reports whether c is the zero Command.
func (c Command) IsZero() bool {
	return c == Command{}
}

// Area returns the part of the name before the first dot.
func (c Command) Area() string {
	area, _, _ := strings.Cut(c.Name, ".")
	return area
}

// String returns a readable form such as "cursor.findCharForward('x')",
// "scroll.up(1)" or "command.typable(\"write\")".
func (c Command) String() string {
	var args []string
	if c.Char != 0 {
		args = append(args, strconv.QuoteRune(c.Char))
	}
	if c.Char2 != 0 {
		args = append(args, strconv.QuoteRune(c.Char2))
	}
	if c.Text != "" {
		args = append(args, strconv.Quote(c.Text))
	}
	if c.Count != 0 {
		args = append(args, strconv.Itoa(c.Count))
	}
	if len(args) == 0 {
		return c.Name
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// Parameterized constructors.

func FindCharForward(ch rune) Command        { return WithChar(NameFindCharForward, ch) }
func FindCharBackward(ch rune) Command       { return WithChar(NameFindCharBackward, ch) }
func TillCharForward(ch rune) Command        { return WithChar(NameTillCharForward, ch) }
func TillCharBackward(ch rune) Command       { return WithChar(NameTillCharBackward, ch) }
func ExtendFindCharForward(ch rune) Command  { return WithChar(NameExtendFindCharForward, ch) }
func ExtendFindCharBackward(ch rune) Command { return WithChar(NameExtendFindCharBackward, ch) }
func ExtendTillCharForward(ch rune) Command  { return WithChar(NameExtendTillCharForward, ch) }
func ExtendTillCharBackward(ch rune) Command { return WithChar(NameExtendTillCharBackward, ch) }
func ReplaceChar(ch rune) Command            { return WithChar(NameReplaceChar, ch) }
func SetSelectedRegister(ch rune) Command    { return WithChar(NameSetSelectedRegister, ch) }
func SelectInsidePair(ch rune) Command       { return WithChar(NameSelectInsidePair, ch) }
func SelectAroundPair(ch rune) Command       { return WithChar(NameSelectAroundPair, ch) }
func SurroundAdd(ch rune) Command            { return WithChar(NameSurroundAdd, ch) }
func SurroundDelete(ch rune) Command         { return WithChar(NameSurroundDelete, ch) }
func InsertRegister(ch rune) Command         { return WithChar(NameInsertRegister, ch) }
func ScrollUp(n int) Command                 { return WithCount(NameScrollUp, n) }
func ScrollDown(n int) Command               { return WithCount(NameScrollDown, n) }
func Earlier(n int) Command                  { return WithCount(NameEarlier, n) }
func Later(n int) Command                    { return WithCount(NameLater, n) }

// SurroundReplace replaces the surrounding pair from with to.
func SurroundReplace(from, to rune) Command {
	return Command{Name: NameSurroundReplace, Char: from, Char2: to}
}

// Typable creates a colon command such as ":write" (text "write").
func Typable(text string) Command {
	return Command{Name: NameTypable, Text: text}
}

// ShellBehavior selects what a shell command does with its output.
type ShellBehavior string

const (
	ShellReplace ShellBehavior = "replace"
	ShellIgnore  ShellBehavior = "ignore"
	ShellInsert  ShellBehavior = "insert"
	ShellAppend  ShellBehavior = "append"
)

// EnterShellMode opens the shell prompt with the given output behavior.
func EnterShellMode(b ShellBehavior) Command {
	return Command{Name: NameEnterShellMode, Text: string(b)}
}

// EnterSearchMode opens the search prompt.
func EnterSearchMode(backwards bool) Command {
	if backwards {
		return New(NameSearchBackward)
	}
	return New(NameSearchForward)
}

// EnterRegexMode opens the select-regex prompt, or the split prompt when
// split is set.
func EnterRegexMode(split bool) Command {
	if split {
		return New(NameSplitSelection)
	}
	return New(NameSelectRegex)
}

// IsModeChange reports whether c switches the editor mode, and to which
// mode name ("normal", "select" or "insert").
func (c Command) IsModeChange() (string, bool) {
	switch c.Name {
	case NameEnterInsertMode, NameEnterInsertModeLineStart, NameEnterInsertModeAfter,
		NameEnterInsertModeLineEnd, NameOpenLineBelow, NameOpenLineAbove,
		NameChangeSelection, NameChangeSelectionNoYank:
		return "insert", true
	case NameEnterSelectMode:
		return "select", true
	case NameExitInsertMode, NameExitSelectMode:
		return "normal", true
	}
	return "", false
}
