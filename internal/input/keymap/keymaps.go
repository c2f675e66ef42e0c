package keymap

import (
	"errors"
	"fmt"
	"sort"
)

// Keymaps holds one table per mode.
type Keymaps map[Mode]Trie

// Get returns the table for m.
func (k Keymaps) Get(m Mode) (Trie, bool) {
	t, ok := k[m]
	return t, ok && t != nil
}

// Clone returns a deep copy.
func (k Keymaps) Clone() Keymaps {
	out := make(Keymaps, len(k))
	for m, t := range k {
		out[m] = Clone(t)
	}
	return out
}

// WithOverrides merges per-mode overrides onto a copy of k. Modes missing
// from k take the override as their whole table.
func (k Keymaps) WithOverrides(overrides map[Mode]Trie) Keymaps {
	out := k.Clone()
	for m, o := range overrides {
		if base, ok := out[m]; ok && base != nil {
			out[m] = Merge(base, o)
			continue
		}
		out[m] = Clone(o)
	}
	return out
}

// Validate checks every node-shaped table.
func (k Keymaps) Validate() error {
	var errs []error
	for _, m := range Modes() {
		n, ok := k[m].(*Node)
		if !ok {
			continue
		}
		if err := n.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m, err))
		}
	}
	return errors.Join(errs...)
}

// ParseModeTables parses a table of per-mode tables such as the decoded
// [keys] section of a configuration file:
//
//	[keys.normal]
//	C-s = ":write"
//
//	[keys.normal.g]
//	a = "code_action"
func (r *Registry) ParseModeTables(v map[string]any) (map[Mode]Trie, error) {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[Mode]Trie, len(v))
	from := make(map[Mode]string, len(v))
	for _, name := range names {
		table := v[name]
		m, err := ParseMode(name)
		if err != nil {
			return nil, &ParseError{Path: []string{name}, Err: err}
		}
		if prev, ok := from[m]; ok {
			return nil, &ParseError{Path: []string{name}, Err: fmt.Errorf("%w: %s already set by %q", ErrDuplicateMode, m, prev)}
		}
		from[m] = name
		t, err := r.parseValue(table, []string{name})
		if err != nil {
			return nil, err
		}
		if _, ok := t.(*Node); !ok {
			return nil, &ParseError{Path: []string{name}, Err: fmt.Errorf("%w: mode %s must be a table", ErrInvalidValue, m)}
		}
		out[m] = t
	}
	return out, nil
}
