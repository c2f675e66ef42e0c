package input

import (
	"sync"

	"github.com/dshills/keychord/internal/input/command"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
)

// Logger is the subset of the application logger the dispatcher uses.
type Logger interface {
	Debug(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-key debug output.
func WithLogger(l Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics records every dispatch into m.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// Dispatcher turns key events into outcomes against per-mode tables.
//
// It holds three pieces of transient state: the keys typed toward the
// current search, an optional sticky node, and an optional await state.
// Dispatch never fails; every key yields exactly one Outcome and leaves
// the state either advanced or fully cleared.
type Dispatcher struct {
	mu sync.Mutex

	keymaps keymap.Keymaps

	buffer key.Sequence
	sticky *keymap.Node
	await  keymap.Await

	logger  Logger
	metrics *Metrics
}

// NewDispatcher creates a dispatcher over km.
func NewDispatcher(km keymap.Keymaps, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		keymaps: km,
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch feeds one key press in the given mode.
func (d *Dispatcher) Dispatch(mode keymap.Mode, ev key.Event) Outcome {
	var timer *Timer
	if d.metrics != nil {
		timer = d.metrics.StartKeyEventTimer()
	}

	d.mu.Lock()
	out := d.dispatch(mode, ev.Normalize())
	d.mu.Unlock()

	if timer != nil {
		timer.Stop()
		d.metrics.RecordOutcome(out.Kind)
	}
	d.logger.Debug("dispatch mode=%s key=%s -> %s", mode, ev, out)
	return out
}

func (d *Dispatcher) dispatch(mode keymap.Mode, ev key.Event) Outcome {
	if !d.await.IsZero() {
		return d.resolveAwait(mode, ev)
	}

	if ev.IsEscape() && (len(d.buffer) > 0 || d.sticky != nil) {
		d.clear()
		return Outcome{Kind: Cancelled}
	}

	if d.sticky != nil {
		return d.dispatchSticky(ev)
	}

	return d.dispatchBuffered(mode, ev)
}

// resolveAwait consumes ev as the character argument of the pending await.
// The key is never pushed onto the buffer.
func (d *Dispatcher) resolveAwait(mode keymap.Mode, ev key.Event) Outcome {
	if ev.IsEscape() {
		d.clear()
		return Outcome{Kind: Cancelled}
	}
	if !ev.IsRune() {
		d.await = keymap.Await{}
		return Outcome{Kind: NotFound}
	}

	if next, ok := d.await.Advance(ev.Rune); ok {
		d.await = next
		return awaiting(next)
	}

	cmds := keymap.Resolve(d.await, ev.Rune, mode)
	d.await = keymap.Await{}
	return matched(cmds)
}

// dispatchSticky looks ev up one level below the active sticky node.
func (d *Dispatcher) dispatchSticky(ev key.Event) Outcome {
	child, ok := d.sticky.Get(ev)
	if !ok {
		d.sticky = nil
		return Outcome{Kind: NotFound}
	}

	switch c := child.(type) {
	case *keymap.Node:
		d.sticky = c
		return pending(c.Name())
	case *keymap.Leaf:
		if c.Slot.IsAwait() {
			d.await = keymap.Await{Kind: c.Slot.Await}
			return awaiting(d.await)
		}
		return matched(c.Slot.Emit())
	case keymap.Sequence:
		return matched(d.flatten(c))
	}

	d.sticky = nil
	return Outcome{Kind: NotFound}
}

// dispatchBuffered appends ev to the buffer and searches the mode's table
// from its root with the whole buffer.
func (d *Dispatcher) dispatchBuffered(mode keymap.Mode, ev key.Event) Outcome {
	table, ok := d.keymaps.Get(mode)
	if !ok {
		d.clear()
		return Outcome{Kind: NotFound}
	}

	d.buffer = append(d.buffer, ev)
	res := keymap.Search(table, d.buffer)

	switch res.Status {
	case keymap.Found:
		d.buffer = nil
		if res.Slot.IsAwait() {
			d.await = keymap.Await{Kind: res.Slot.Await}
			return awaiting(d.await)
		}
		return matched(res.Slot.Emit())

	case keymap.FoundSequence:
		d.buffer = nil
		return matched(d.flatten(res.Slots))

	case keymap.Partial:
		if res.Node.IsSticky() {
			d.buffer = nil
			d.sticky = res.Node
		}
		return pending(res.Node.Name())
	}

	d.buffer = nil
	return Outcome{Kind: NotFound}
}

// flatten concatenates the commands of every slot in seq. Await slots
// cannot run inside a sequence and are dropped.
func (d *Dispatcher) flatten(seq keymap.Sequence) []command.Command {
	var cmds []command.Command
	for _, slot := range seq {
		if slot.IsAwait() {
			d.logger.Debug("dropping await %s inside a sequence", slot.Await)
			continue
		}
		cmds = append(cmds, slot.Emit()...)
	}
	return cmds
}

func (d *Dispatcher) clear() {
	d.buffer = nil
	d.sticky = nil
	d.await = keymap.Await{}
}

// Reset returns the dispatcher to idle.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clear()
}

// SetKeymaps swaps the tables, for example after a configuration reload.
// Transient state is reset since it may point into the old tables.
func (d *Dispatcher) SetKeymaps(km keymap.Keymaps) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keymaps = km
	d.clear()
}

// Keymaps returns the active tables.
func (d *Dispatcher) Keymaps() keymap.Keymaps {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keymaps
}

// IsPending reports whether any transient state is active: buffered keys,
// a sticky node or an await.
func (d *Dispatcher) IsPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buffer) > 0 || d.sticky != nil || !d.await.IsZero()
}

// IsAwaitingChar reports whether the next key is consumed as a character.
func (d *Dispatcher) IsAwaitingChar() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.await.IsZero()
}

// AwaitState returns the pending await, zero when none.
func (d *Dispatcher) AwaitState() keymap.Await {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.await
}

// IsSticky reports whether a sticky node is active.
func (d *Dispatcher) IsSticky() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sticky != nil
}

// StickyName returns the active sticky node's name.
func (d *Dispatcher) StickyName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sticky == nil {
		return ""
	}
	return d.sticky.Name()
}

// PendingKeys returns a copy of the buffered keys.
func (d *Dispatcher) PendingKeys() key.Sequence {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buffer.Clone()
}
