package keymap

import (
	"fmt"
	"strings"
)

// Mode identifies an editor mode with its own key table.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeSelect
	ModeInsert
)

var modeNames = [...]string{
	ModeNormal: "normal",
	ModeSelect: "select",
	ModeInsert: "insert",
}

// Modes returns all modes in table order.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeSelect, ModeInsert}
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode parses a mode name. "visual" is accepted for select mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return ModeNormal, nil
	case "select", "visual":
		return ModeSelect, nil
	case "insert":
		return ModeInsert, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
