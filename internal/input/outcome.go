package input

import (
	"fmt"
	"strings"

	"github.com/dshills/keychord/internal/input/command"
	"github.com/dshills/keychord/internal/input/keymap"
)

// OutcomeKind classifies the result of dispatching one key.
type OutcomeKind uint8

const (
	// NotFound means the key has no binding in the current context.
	NotFound OutcomeKind = iota
	// Matched carries the commands to execute, in order.
	Matched
	// Pending means a prefix was consumed; Name is the node's display name.
	Pending
	// AwaitingChar means the next printable key will be consumed as a
	// character argument.
	AwaitingChar
	// Cancelled means Escape aborted an in-progress sequence, await or
	// sticky state.
	Cancelled
)

var outcomeNames = [...]string{
	NotFound:     "not_found",
	Matched:      "matched",
	Pending:      "pending",
	AwaitingChar: "awaiting_char",
	Cancelled:    "cancelled",
}

func (k OutcomeKind) String() string {
	if int(k) < len(outcomeNames) {
		return outcomeNames[k]
	}
	return fmt.Sprintf("OutcomeKind(%d)", k)
}

// Outcome is the result of Dispatcher.Dispatch.
type Outcome struct {
	Kind OutcomeKind

	// Commands is set for Matched.
	Commands []command.Command

	// Name is the pending node's display name, set for Pending.
	Name string

	// Await is the pending await state, set for AwaitingChar.
	Await keymap.Await
}

func matched(cmds []command.Command) Outcome {
	return Outcome{Kind: Matched, Commands: cmds}
}

func pending(name string) Outcome {
	return Outcome{Kind: Pending, Name: name}
}

func awaiting(a keymap.Await) Outcome {
	return Outcome{Kind: AwaitingChar, Await: a}
}

// String renders the outcome for logs and the CLI.
func (o Outcome) String() string {
	switch o.Kind {
	case Matched:
		parts := make([]string, len(o.Commands))
		for i, c := range o.Commands {
			parts[i] = c.String()
		}
		return "matched [" + strings.Join(parts, ", ") + "]"
	case Pending:
		if o.Name == "" {
			return "pending"
		}
		return fmt.Sprintf("pending (%s)", o.Name)
	case AwaitingChar:
		return fmt.Sprintf("awaiting char (%s)", o.Await)
	}
	return o.Kind.String()
}
