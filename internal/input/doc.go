// Package input turns key presses into editor commands.
//
// The Dispatcher consumes one key.Event at a time together with the
// current editor mode and returns exactly one Outcome:
//
//   - Matched: commands to execute, in order
//   - Pending: a prefix was consumed; Name is the group to show in a hint
//   - AwaitingChar: the next printable key is a character argument
//   - NotFound: the keys have no binding
//   - Cancelled: Escape aborted a sequence, sticky group or await
//
// Multi-key sequences are buffered and re-searched from the root of the
// mode's table on every key. Sticky groups (such as "Z" in the default
// tables) stay active after each match until Escape or an unbound key.
//
// # Usage
//
//	d := input.NewDispatcher(keymap.Defaults(), input.WithLogger(logger))
//
//	for ev := range keyEvents {
//	    out := d.Dispatch(mode, ev)
//	    if out.Kind == input.Matched {
//	        execute(out.Commands)
//	    }
//	}
package input
