package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/keychord/internal/input/key"
)

// FromValue converts a decoded configuration value into a Trie using the
// default registry. See Registry.FromValue.
func FromValue(v any) (Trie, error) {
	return DefaultRegistry().FromValue(v)
}

// FromValue converts a decoded configuration value into a Trie.
//
// A string resolves through the registry (or is a ":" typable command), a
// list of strings becomes a Sequence (or a single leaf when it has one
// entry), and a table becomes a Node whose keys use key notation. Table
// keys are inserted in sorted order because decoded maps carry none.
//
// Parsing fails closed: the first unknown name, bad key or malformed
// value aborts with a *ParseError and no trie is returned.
func (r *Registry) FromValue(v any) (Trie, error) {
	t, err := r.parseValue(v, nil)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FromTable parses a table value into a Node.
func (r *Registry) FromTable(v any) (*Node, error) {
	t, err := r.FromValue(v)
	if err != nil {
		return nil, err
	}
	n, ok := t.(*Node)
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("%w: expected a table, got %T", ErrInvalidValue, v)}
	}
	return n, nil
}

func (r *Registry) parseValue(v any, path []string) (Trie, error) {
	switch val := v.(type) {
	case string:
		slot, err := r.Resolve(val)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		return NewLeaf(slot), nil

	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return r.parseList(items, path)

	case []any:
		return r.parseList(val, path)

	case map[string]any:
		return r.parseTable(val, path)

	case map[any]any:
		table := make(map[string]any, len(val))
		for k, child := range val {
			ks, ok := k.(string)
			if !ok {
				return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: table key %v is not a string", ErrInvalidKey, k)}
			}
			table[ks] = child
		}
		return r.parseTable(table, path)
	}
	return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)}
}

func (r *Registry) parseList(items []any, path []string) (Trie, error) {
	if len(items) == 0 {
		return nil, &ParseError{Path: path, Err: ErrEmptySequence}
	}

	slots := make(Sequence, 0, len(items))
	for i, item := range items {
		name, ok := item.(string)
		if !ok {
			return nil, &ParseError{
				Path: path,
				Err:  fmt.Errorf("%w: sequence entry %d is %T, want string", ErrInvalidValue, i, item),
			}
		}
		slot, err := r.Resolve(name)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		if slot.IsAwait() {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: %q", ErrAwaitInSequence, name)}
		}
		slots = append(slots, slot)
	}

	if len(slots) == 1 {
		return NewLeaf(slots[0]), nil
	}
	return slots, nil
}

func (r *Registry) parseTable(table map[string]any, path []string) (Trie, error) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := NewNode("")
	for _, ks := range keys {
		childPath := append(path[:len(path):len(path)], ks)
		ev, err := key.Parse(ks)
		if err != nil {
			return nil, &ParseError{Path: childPath, Err: fmt.Errorf("%w: %w", ErrInvalidKey, err)}
		}
		child, err := r.parseValue(table[ks], childPath)
		if err != nil {
			return nil, err
		}
		node.Insert(ev, child)
	}
	return node, nil
}
