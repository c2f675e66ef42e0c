package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift is only kept on named keys; runes carry shift in the
	// character itself.
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	// ModSuper is Cmd on macOS and Win elsewhere.
	ModSuper
)

// modifierOrder is the canonical rendering order. Parsing accepts any
// order, so C-A-x and A-C-x are the same event.
var modifierOrder = [...]struct {
	mod   Modifier
	long  string
	short string
}{
	{ModCtrl, "Ctrl", "C"},
	{ModAlt, "Alt", "A"},
	{ModSuper, "Super", "M"},
	{ModShift, "Shift", "S"},
}

// modifierAliases maps lowercase names to modifiers.
var modifierAliases = map[string]Modifier{
	"c": ModCtrl, "ctrl": ModCtrl, "control": ModCtrl,
	"a": ModAlt, "alt": ModAlt, "opt": ModAlt, "option": ModAlt,
	"s": ModShift, "shift": ModShift,
	"m": ModSuper, "d": ModSuper, "meta": ModSuper, "super": ModSuper,
	"cmd": ModSuper, "command": ModSuper, "win": ModSuper,
}

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod && mod != ModNone
}

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }
func (m Modifier) HasSuper() bool { return m.Has(ModSuper) }

// With adds mod.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without removes mod.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// IsEmpty reports whether no modifier is held.
func (m Modifier) IsEmpty() bool { return m == ModNone }

// String renders m as "Ctrl+Alt".
func (m Modifier) String() string {
	return m.join(func(i int) string { return modifierOrder[i].long }, "+")
}

// ShortString renders m as the prefix used in key specs, "C-A".
func (m Modifier) ShortString() string {
	return m.join(func(i int) string { return modifierOrder[i].short }, "-")
}

func (m Modifier) join(name func(int) string, sep string) string {
	var parts []string
	for i, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, name(i))
		}
	}
	return strings.Join(parts, sep)
}

// ModifierFromName returns the modifier called name, ignoring case, or
// ModNone.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(name)]
}
