package keymap

import (
	"fmt"

	"github.com/dshills/keychord/internal/input/command"
)

// AwaitKind identifies a "consume one more character" operation.
type AwaitKind uint8

const (
	AwaitNone AwaitKind = iota
	AwaitFindForward
	AwaitFindBackward
	AwaitTillForward
	AwaitTillBackward
	AwaitReplaceChar
	AwaitSelectRegister
	AwaitSelectInsidePair
	AwaitSelectAroundPair
	AwaitSurroundAdd
	AwaitSurroundDelete
	// AwaitSurroundReplaceFrom captures the old delimiter and moves on to
	// AwaitSurroundReplaceTo.
	AwaitSurroundReplaceFrom
	// AwaitSurroundReplaceTo only exists at dispatch time. It never
	// appears in a trie.
	AwaitSurroundReplaceTo
	// AwaitInsertRegister is bound in insert mode only.
	AwaitInsertRegister
)

var awaitNames = [...]string{
	AwaitNone:                "none",
	AwaitFindForward:         "find_forward",
	AwaitFindBackward:        "find_backward",
	AwaitTillForward:         "till_forward",
	AwaitTillBackward:        "till_backward",
	AwaitReplaceChar:         "replace_char",
	AwaitSelectRegister:      "select_register",
	AwaitSelectInsidePair:    "select_inside_pair",
	AwaitSelectAroundPair:    "select_around_pair",
	AwaitSurroundAdd:         "surround_add",
	AwaitSurroundDelete:      "surround_delete",
	AwaitSurroundReplaceFrom: "surround_replace_from",
	AwaitSurroundReplaceTo:   "surround_replace_to",
	AwaitInsertRegister:      "insert_register",
}

func (k AwaitKind) String() string {
	if int(k) < len(awaitNames) {
		return awaitNames[k]
	}
	return fmt.Sprintf("AwaitKind(%d)", k)
}

// Await is a pending await-char state. Prev holds the character captured
// by the first stage of a two-stage kind.
type Await struct {
	Kind AwaitKind
	Prev rune
}

// IsZero reports whether no await is pending.
func (a Await) IsZero() bool {
	return a.Kind == AwaitNone
}

func (a Await) String() string {
	if a.Kind == AwaitSurroundReplaceTo {
		return fmt.Sprintf("%s(%q)", a.Kind, a.Prev)
	}
	return a.Kind.String()
}

// Advance returns the next stage when ch completes only the first half of
// a two-stage kind.
func (a Await) Advance(ch rune) (Await, bool) {
	if a.Kind == AwaitSurroundReplaceFrom {
		return Await{Kind: AwaitSurroundReplaceTo, Prev: ch}, true
	}
	return Await{}, false
}

// Resolve maps an await state and its resolving character to commands.
// Find and till motions extend the selection in select mode. The first
// stage of a two-stage kind produces no commands; see Advance.
func Resolve(a Await, ch rune, mode Mode) []command.Command {
	extend := mode == ModeSelect
	var c command.Command
	switch a.Kind {
	case AwaitFindForward:
		c = command.FindCharForward(ch)
		if extend {
			c = command.ExtendFindCharForward(ch)
		}
	case AwaitFindBackward:
		c = command.FindCharBackward(ch)
		if extend {
			c = command.ExtendFindCharBackward(ch)
		}
	case AwaitTillForward:
		c = command.TillCharForward(ch)
		if extend {
			c = command.ExtendTillCharForward(ch)
		}
	case AwaitTillBackward:
		c = command.TillCharBackward(ch)
		if extend {
			c = command.ExtendTillCharBackward(ch)
		}
	case AwaitReplaceChar:
		c = command.ReplaceChar(ch)
	case AwaitSelectRegister:
		c = command.SetSelectedRegister(ch)
	case AwaitSelectInsidePair:
		c = command.SelectInsidePair(ch)
	case AwaitSelectAroundPair:
		c = command.SelectAroundPair(ch)
	case AwaitSurroundAdd:
		c = command.SurroundAdd(ch)
	case AwaitSurroundDelete:
		c = command.SurroundDelete(ch)
	case AwaitSurroundReplaceTo:
		c = command.SurroundReplace(a.Prev, ch)
	case AwaitInsertRegister:
		c = command.InsertRegister(ch)
	default:
		return nil
	}
	return []command.Command{c}
}
