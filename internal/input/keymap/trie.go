package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/keychord/internal/input/key"
)

// Trie is one of *Leaf, Sequence or *Node.
type Trie interface {
	isTrie()
}

// Leaf holds a single slot.
type Leaf struct {
	Slot Slot
}

// Sequence is a leaf whose slots are emitted together, in order.
type Sequence []Slot

// Node is an internal trie position with named, ordered children.
type Node struct {
	name   string
	sticky bool
	edges  map[key.Event]Trie
	order  []key.Event
}

func (*Leaf) isTrie()    {}
func (Sequence) isTrie() {}
func (*Node) isTrie()    {}

// NewLeaf returns a leaf holding s.
func NewLeaf(s Slot) *Leaf {
	return &Leaf{Slot: s}
}

// NewNode creates an empty node with a display name.
func NewNode(name string) *Node {
	return &Node{
		name:  name,
		edges: make(map[key.Event]Trie),
	}
}

// NewStickyNode creates a node that stays active after a match until
// cancelled or an unbound key arrives.
func NewStickyNode(name string) *Node {
	n := NewNode(name)
	n.sticky = true
	return n
}

// Name returns the display name.
func (n *Node) Name() string {
	return n.name
}

// IsSticky reports whether the node is sticky.
func (n *Node) IsSticky() bool {
	return n.sticky
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.order)
}

// Insert adds or replaces the child for ev. A replaced child keeps its
// position in the enumeration order.
func (n *Node) Insert(ev key.Event, child Trie) {
	if _, exists := n.edges[ev]; !exists {
		n.order = append(n.order, ev)
	}
	n.edges[ev] = child
}

// Get returns the child for ev.
func (n *Node) Get(ev key.Event) (Trie, bool) {
	child, ok := n.edges[ev]
	return child, ok
}

// Keys returns the child keys in insertion order.
func (n *Node) Keys() []key.Event {
	return append([]key.Event(nil), n.order...)
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := &Node{
		name:   n.name,
		sticky: n.sticky,
		edges:  make(map[key.Event]Trie, len(n.edges)),
		order:  append([]key.Event(nil), n.order...),
	}
	for ev, child := range n.edges {
		c.edges[ev] = Clone(child)
	}
	return c
}

// Clone returns a deep copy of t.
func Clone(t Trie) Trie {
	switch v := t.(type) {
	case *Leaf:
		return &Leaf{Slot: cloneSlot(v.Slot)}
	case Sequence:
		out := make(Sequence, len(v))
		for i, s := range v {
			out[i] = cloneSlot(s)
		}
		return out
	case *Node:
		return v.Clone()
	}
	return t
}

func cloneSlot(s Slot) Slot {
	if s.Commands != nil {
		s.Commands = append(s.Commands[:0:0], s.Commands...)
	}
	return s
}

// SearchStatus classifies a search result.
type SearchStatus uint8

const (
	NotFound SearchStatus = iota
	Found
	FoundSequence
	Partial
)

func (s SearchStatus) String() string {
	switch s {
	case Found:
		return "found"
	case FoundSequence:
		return "found-sequence"
	case Partial:
		return "partial"
	}
	return "not-found"
}

// SearchResult is the outcome of Search.
type SearchResult struct {
	Status SearchStatus
	Slot   Slot     // Found
	Slots  Sequence // FoundSequence
	Node   *Node    // Partial
}

// Search walks t along keys. Leaves only match with no keys left; a node
// reached with no keys left is Partial.
func Search(t Trie, keys key.Sequence) SearchResult {
	for _, ev := range keys {
		n, ok := t.(*Node)
		if !ok {
			return SearchResult{Status: NotFound}
		}
		child, ok := n.edges[ev]
		if !ok {
			return SearchResult{Status: NotFound}
		}
		t = child
	}

	switch v := t.(type) {
	case *Leaf:
		return SearchResult{Status: Found, Slot: v.Slot}
	case Sequence:
		return SearchResult{Status: FoundSequence, Slots: v}
	case *Node:
		return SearchResult{Status: Partial, Node: v}
	}
	return SearchResult{Status: NotFound}
}

// Entry is one bound key path, as listed by Bindings.
type Entry struct {
	Keys key.Sequence
	// Group is the display name of the innermost named node on the path.
	Group string
	Leaf  Trie
}

// Describe renders the leaf payload.
func (e Entry) Describe() string {
	switch v := e.Leaf.(type) {
	case *Leaf:
		return v.Slot.String()
	case Sequence:
		s := ""
		for i, slot := range v {
			if i > 0 {
				s += " "
			}
			s += slot.String()
		}
		return s
	}
	return ""
}

// Bindings lists every leaf under n depth-first in insertion order.
func (n *Node) Bindings() []Entry {
	var out []Entry
	n.walk(nil, n.name, func(keys key.Sequence, group string, leaf Trie) {
		out = append(out, Entry{Keys: keys.Clone(), Group: group, Leaf: leaf})
	})
	return out
}

func (n *Node) walk(prefix key.Sequence, group string, fn func(key.Sequence, string, Trie)) {
	for _, ev := range n.order {
		path := prefix.Append(ev)
		switch child := n.edges[ev].(type) {
		case *Node:
			g := group
			if child.name != "" {
				g = child.name
			}
			child.walk(path, g, fn)
		default:
			fn(path, group, child)
		}
	}
}

// Validate reports structural problems that dispatch would otherwise
// silently tolerate: await slots inside sequences, empty sequences, and
// dispatch-only await kinds stored in the tree.
func (n *Node) Validate() error {
	var errs []error
	n.walk(nil, n.name, func(keys key.Sequence, _ string, leaf Trie) {
		switch v := leaf.(type) {
		case *Leaf:
			if err := validateSlot(v.Slot); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", keys, err))
			}
		case Sequence:
			if len(v) == 0 {
				errs = append(errs, fmt.Errorf("%s: %w", keys, ErrEmptySequence))
			}
			for _, s := range v {
				if s.IsAwait() {
					errs = append(errs, fmt.Errorf("%s: %w", keys, ErrAwaitInSequence))
					continue
				}
				if err := validateSlot(s); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", keys, err))
				}
			}
		case nil:
			errs = append(errs, fmt.Errorf("%s: %w", keys, ErrInvalidValue))
		}
	})
	return errors.Join(errs...)
}

func validateSlot(s Slot) error {
	switch s.Kind {
	case SlotSequence:
		if len(s.Commands) == 0 {
			return ErrEmptySequence
		}
	case SlotAwait:
		if s.Await == AwaitNone || s.Await == AwaitSurroundReplaceTo {
			return fmt.Errorf("%w: await kind %s cannot be bound", ErrInvalidValue, s.Await)
		}
	}
	return nil
}
