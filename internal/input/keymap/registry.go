package keymap

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/keychord/internal/input/command"
	"github.com/dshills/keychord/internal/input/fuzzy"
)

// TypablePrefix marks a colon command in configuration values.
const TypablePrefix = ":"

// Registry maps configuration command names to slots.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Slot
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Slot),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry of built-in command names.
// The names follow the helix-term command names so existing [keys]
// tables can be reused.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		for _, e := range builtinCommands {
			if err := r.Register(e.name, e.slot); err != nil {
				panic(err)
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register adds a named slot. Registering a name twice is an error.
func (r *Registry) Register(name string, slot Slot) error {
	if name == "" || strings.HasPrefix(name, TypablePrefix) {
		return fmt.Errorf("%w: invalid command name %q", ErrInvalidValue, name)
	}
	if err := validateSlot(slot); err != nil {
		return fmt.Errorf("registering %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.entries[name] = cloneSlot(slot)
	return nil
}

// Lookup returns the slot registered under name.
func (r *Registry) Lookup(name string) (Slot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.entries[name]
	if !ok {
		return Slot{}, false
	}
	return cloneSlot(slot), true
}

// Resolve turns a configuration string into a slot. A leading ":" makes a
// typable command carrying the rest of the string; anything else must be
// a registered name.
func (r *Registry) Resolve(s string) (Slot, error) {
	if text, ok := strings.CutPrefix(s, TypablePrefix); ok {
		if strings.TrimSpace(text) == "" {
			return Slot{}, fmt.Errorf("%w: empty typable command", ErrInvalidValue)
		}
		return Cmd(command.Typable(text)), nil
	}
	slot, ok := r.Lookup(s)
	if !ok {
		if near := r.Suggest(s, 1); len(near) > 0 {
			return Slot{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCommand, s, near[0])
		}
		return Slot{}, fmt.Errorf("%w %q", ErrUnknownCommand, s)
	}
	return slot, nil
}

// Suggest returns up to limit registered names that fuzzily match s, best
// first.
func (r *Registry) Suggest(s string, limit int) []string {
	if s == "" {
		return nil
	}
	m := fuzzy.NewMatcher(fuzzy.DefaultOptions())
	return m.Best(s, r.Names(), limit)
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
