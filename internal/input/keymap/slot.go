package keymap

import (
	"strings"

	"github.com/dshills/keychord/internal/input/command"
)

// SlotKind identifies the variant held by a Slot.
type SlotKind uint8

const (
	// SlotCommand emits one command.
	SlotCommand SlotKind = iota
	// SlotSequence emits a fixed, non-empty list of commands in order.
	SlotSequence
	// SlotAwait arms the dispatcher to consume one more character.
	SlotAwait
)

// Slot is the payload at a trie leaf.
type Slot struct {
	Kind     SlotKind
	Command  command.Command
	Commands []command.Command
	Await    AwaitKind
}

// Cmd returns a single-command slot.
func Cmd(c command.Command) Slot {
	return Slot{Kind: SlotCommand, Command: c}
}

// Seq returns a slot that emits cmds together.
func Seq(cmds ...command.Command) Slot {
	return Slot{Kind: SlotSequence, Commands: append([]command.Command(nil), cmds...)}
}

// AwaitChar returns an await-char slot of the given kind.
func AwaitChar(kind AwaitKind) Slot {
	return Slot{Kind: SlotAwait, Await: kind}
}

// IsAwait reports whether s waits for a character.
func (s Slot) IsAwait() bool {
	return s.Kind == SlotAwait
}

// Emit returns the commands a matched slot produces. Await slots produce
// none.
func (s Slot) Emit() []command.Command {
	switch s.Kind {
	case SlotCommand:
		return []command.Command{s.Command}
	case SlotSequence:
		return append([]command.Command(nil), s.Commands...)
	}
	return nil
}

// Equal reports whether two slots hold the same payload.
func (s Slot) Equal(other Slot) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case SlotCommand:
		return s.Command == other.Command
	case SlotAwait:
		return s.Await == other.Await
	}
	if len(s.Commands) != len(other.Commands) {
		return false
	}
	for i, c := range s.Commands {
		if c != other.Commands[i] {
			return false
		}
	}
	return true
}

func (s Slot) String() string {
	switch s.Kind {
	case SlotCommand:
		return s.Command.String()
	case SlotAwait:
		return "await(" + s.Await.String() + ")"
	}
	parts := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
