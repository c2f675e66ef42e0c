package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press.
//
// Event is comparable: two events are equal iff key, rune and modifiers
// are equal, so it can be used directly as a map key. Construct rune
// events with NewRuneEvent (or call Normalize) so that Shift is folded
// into the character.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates a normalized key event.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{Key: key, Rune: r, Modifiers: mods}.Normalize()
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}.Normalize()
}

// NewSpecialEvent creates a key event for a named key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// Normalize folds Shift into rune events: letters are upper-cased and the
// Shift bit is cleared. Named keys keep Shift (S-tab is distinct from tab).
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	if e.Modifiers.HasShift() {
		e.Rune = unicode.ToUpper(e.Rune)
		e.Modifiers = e.Modifiers.Without(ModShift)
	}
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if Ctrl, Alt or Super is pressed, or Shift on a
// named key.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModSuper) != 0
	}
	return e.Modifiers != ModNone
}

// IsSpecial returns true if this is a special (non-character) key.
func (e Event) IsSpecial() bool {
	return e.Key.IsSpecial()
}

// String returns the compact representation, which Parse accepts.
// Examples: "a", "G", "C-s", "A-ret", "S-tab", "space", "C-M-space"
func (e Event) String() string {
	var sb strings.Builder
	if prefix := e.Modifiers.ShortString(); prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte('-')
	}

	switch e.Key {
	case KeyRune:
		if name, ok := runeNames[e.Rune]; ok {
			sb.WriteString(name)
		} else {
			sb.WriteRune(e.Rune)
		}
	default:
		sb.WriteString(e.Key.String())
	}
	return sb.String()
}

// VimString returns a Vim-style string representation.
// Examples: "<Esc>", "<C-s>", "<S-Tab>", "<CR>", "a", "A"
func (e Event) VimString() string {
	if e.IsRune() && !e.IsModified() {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasSuper() {
		parts = append(parts, "D") // Vim uses D for command/meta
	}
	if e.Modifiers.HasShift() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		switch e.Rune {
		case ' ':
			keyName = "Space"
		case '-':
			keyName = "minus"
		case '<':
			keyName = "lt"
		default:
			keyName = string(e.Rune)
		}
	case KeyEscape:
		keyName = "Esc"
	case KeyEnter:
		keyName = "CR"
	case KeyTab:
		keyName = "Tab"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	case KeyInsert:
		keyName = "Insert"
	case KeyPageUp:
		keyName = "PageUp"
	case KeyPageDown:
		keyName = "PageDown"
	case KeyNull:
		keyName = "Nul"
	default:
		name := e.Key.String()
		keyName = strings.ToUpper(name[:1]) + name[1:]
	}

	parts = append(parts, keyName)
	return "<" + strings.Join(parts, "-") + ">"
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Normalize() == parsed
}

// IsEscape returns true if this is the Escape key, with any modifiers.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape
}

// IsEnter returns true if this is the Enter key (with no modifiers).
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Modifiers == ModNone
}

// IsBackspace returns true if this is Backspace (with no modifiers).
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace && e.Modifiers == ModNone
}

// IsTab returns true if this is Tab (with no modifiers).
func (e Event) IsTab() bool {
	return e.Key == KeyTab && e.Modifiers == ModNone
}

// WithModifier returns a copy with the specified modifier added.
func (e Event) WithModifier(mod Modifier) Event {
	e.Modifiers = e.Modifiers.With(mod)
	return e.Normalize()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
