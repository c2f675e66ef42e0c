package keymap

import (
	"fmt"

	"github.com/dshills/keychord/internal/input/key"
)

// Binding declares one key path in a built-in table.
type Binding struct {
	// Keys is the space-separated key path, e.g. "g g" or "space f".
	Keys string

	// Action is a registry name, or a ":" typable command.
	Action string

	// Actions emits several registry commands together.
	Actions []string

	// Slot is used as-is when Action and Actions are empty.
	Slot Slot

	// Description documents the binding for listings.
	Description string
}

// Group declares a named prefix node.
type Group struct {
	Keys   string
	Name   string
	Sticky bool
}

// Build assembles a table from groups and bindings. Every multi-key
// binding must sit under a declared group, which keeps pending-state names
// meaningful. Groups must be declared parent first.
func Build(r *Registry, name string, groups []Group, bindings []Binding) (*Node, error) {
	root := NewNode(name)

	for _, g := range groups {
		seq, err := key.ParseSequence(g.Keys)
		if err != nil || len(seq) == 0 {
			return nil, fmt.Errorf("group %q: %w", g.Keys, ErrInvalidKey)
		}
		parent, err := nodeAt(root, seq[:len(seq)-1])
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Keys, err)
		}
		n := NewNode(g.Name)
		n.sticky = g.Sticky
		parent.Insert(seq[len(seq)-1], n)
	}

	for _, b := range bindings {
		seq, err := key.ParseSequence(b.Keys)
		if err != nil || len(seq) == 0 {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, ErrInvalidKey)
		}
		parent, err := nodeAt(root, seq[:len(seq)-1])
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		leaf, err := b.leaf(r)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		parent.Insert(seq[len(seq)-1], leaf)
	}

	return root, nil
}

func (b Binding) leaf(r *Registry) (Trie, error) {
	switch {
	case b.Action != "":
		slot, err := r.Resolve(b.Action)
		if err != nil {
			return nil, err
		}
		return NewLeaf(slot), nil

	case len(b.Actions) > 0:
		var cmds Slot
		cmds.Kind = SlotSequence
		for _, name := range b.Actions {
			slot, err := r.Resolve(name)
			if err != nil {
				return nil, err
			}
			if slot.IsAwait() {
				return nil, fmt.Errorf("%w: %q", ErrAwaitInSequence, name)
			}
			cmds.Commands = append(cmds.Commands, slot.Emit()...)
		}
		return NewLeaf(cmds), nil
	}

	if err := validateSlot(b.Slot); err != nil {
		return nil, err
	}
	if b.Slot.Kind == SlotCommand && b.Slot.Command.IsZero() {
		return nil, fmt.Errorf("%w: binding has no action", ErrInvalidValue)
	}
	return NewLeaf(b.Slot), nil
}

// nodeAt returns the declared node at path.
func nodeAt(root *Node, path key.Sequence) (*Node, error) {
	n := root
	for _, ev := range path {
		child, ok := n.Get(ev)
		if !ok {
			return nil, fmt.Errorf("%w: no group declared for %s", ErrInvalidKey, ev)
		}
		next, ok := child.(*Node)
		if !ok {
			return nil, fmt.Errorf("%w: %s is bound to a command", ErrInvalidKey, ev)
		}
		n = next
	}
	return n, nil
}

// prefixed copies bindings under a key prefix.
func prefixed(prefix string, bindings []Binding) []Binding {
	out := make([]Binding, len(bindings))
	for i, b := range bindings {
		b.Keys = prefix + " " + b.Keys
		out[i] = b
	}
	return out
}
