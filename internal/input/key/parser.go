package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@", "-", "<", " "
//   - Named keys: "ret", "esc", "tab", "backspace", "del", "pageup", "F5"
//   - Named characters: "space", "minus", "lt", "gt"
//   - Compact modifiers: "C-s", "A-o", "S-tab", "C-S-a", "C-M-space", "C--"
//   - Plus-separated modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
//
// The returned event is normalized.
func Parse(spec string) (Event, error) {
	if spec == " " {
		return NewRuneEvent(' ', ModNone), nil
	}

	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// A lone character is always itself, even "<", "-" and "+".
	if runes := []rune(spec); len(runes) == 1 {
		return NewRuneEvent(runes[0], ModNone), nil
	}

	if strings.HasPrefix(spec, "<") {
		if !strings.HasSuffix(spec, ">") {
			return Event{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if strings.Contains(spec, "+") && !strings.HasSuffix(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseCompact(spec)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc"
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	mods, keyPart, err := splitModifiers(inner)
	if err != nil {
		return Event{}, err
	}
	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	return parseKeyWithModifiers(keyPart, mods)
}

// parseCompact parses "C-s", "S-tab", "ret" and other hyphenated forms.
func parseCompact(spec string) (Event, error) {
	mods, keyPart, err := splitModifiers(spec)
	if err != nil {
		return Event{}, err
	}
	return parseKeyWithModifiers(keyPart, mods)
}

// splitModifiers consumes leading "X-" modifier tokens and returns the
// remaining key part. "C--" yields Ctrl and "-".
func splitModifiers(s string) (Modifier, string, error) {
	var mods Modifier
	rest := s
	for {
		idx := strings.IndexByte(rest, '-')
		if idx <= 0 {
			break
		}
		mod := ModifierFromName(rest[:idx])
		if mod == ModNone {
			if mods != ModNone {
				return ModNone, "", fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, rest[:idx])
			}
			break
		}
		mods = mods.With(mod)
		rest = rest[idx+1:]
		if rest == "" {
			return ModNone, "", fmt.Errorf("%w: missing key after modifiers in %q", ErrInvalidSpec, s)
		}
	}
	return mods, rest, nil
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if runes := []rune(keyPart); len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}

	if r, ok := RuneFromName(keyPart); ok {
		return NewRuneEvent(r, mods), nil
	}

	if key := KeyFromName(keyPart); key != KeyNone {
		return NewSpecialEvent(key, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// FormatSpec formats a key event as a specification string.
// This produces a canonical form that can be parsed back.
func FormatSpec(event Event) string {
	return event.String()
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return FormatSpec(event), nil
}
