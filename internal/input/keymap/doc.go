// Package keymap holds the per-mode key tables and the pieces that build
// them.
//
// # Key Concepts
//
// Trie: a tree over key events. Leaves hold a Slot (what to do) and
// internal nodes carry a display name plus a sticky flag. A Sequence leaf
// emits several slots together.
//
// Slot: a single command, a fixed list of commands, or an await-char
// marker that makes the dispatcher consume one more character.
//
// Registry: maps command names ("move_char_left", "find_char", ...) to
// slots so user configuration can refer to commands by name.
//
// Merge: folds an override trie into a base trie. The override wins where
// it defines something and every other base binding is kept.
//
// # Configuration Shape
//
// FromValue converts a decoded configuration value into a Trie:
//
//	"move_char_left"              single command
//	":write"                      typable command with text "write"
//	["yank", "exit_select_mode"]  sequence of commands
//	{ "g" = { "x" = "..." } }     node keyed by key notation
//
// # Usage
//
//	maps := keymap.Defaults()
//	override, err := keymap.FromValue(userTable)
//	if err != nil {
//	    return err
//	}
//	maps = maps.WithOverrides(map[keymap.Mode]keymap.Trie{keymap.ModeNormal: override})
package keymap
