// Package key provides key event types and key-string parsing for the
// dispatcher.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a named key (Escape, Enter, arrows, ...) or KeyRune
//   - Modifier: A bitset of modifier keys (Ctrl, Alt, Shift, Super)
//   - Event: One key press. Events are comparable and are used directly
//     as trie edge labels and map keys.
//   - Sequence: An ordered list of events
//
// # Key Specifications
//
// Key specifications can be written in several notations:
//
//   - Simple keys: "a", "G", "1", "%"
//   - Compact notation: "C-s", "A-o", "S-tab", "C-S-a", "C-M-space"
//   - Named tokens: "ret", "esc", "space", "minus", "lt", "gt", "backspace", "del"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>"
//
// # Rune Normalization
//
// A rune event never carries Shift. The character encodes case, so "G",
// "S-g" and a terminal event for Shift+g all produce the same Event.
package key
