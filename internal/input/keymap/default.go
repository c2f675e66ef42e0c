package keymap

import (
	"github.com/dshills/keychord/internal/input/command"
)

// Defaults returns the built-in tables for every mode.
func Defaults() Keymaps {
	return Keymaps{
		ModeNormal: DefaultNormal(),
		ModeSelect: DefaultSelect(),
		ModeInsert: DefaultInsert(),
	}
}

// DefaultNormal returns the built-in normal mode table.
func DefaultNormal() *Node {
	bindings := append([]Binding{}, normalBindings...)
	bindings = append(bindings, prefixed("g", gotoBindings)...)
	bindings = append(bindings, sharedPrefixBindings()...)
	return mustBuild("normal", sharedGroups, bindings)
}

// DefaultSelect returns the built-in select mode table.
func DefaultSelect() *Node {
	bindings := append([]Binding{}, selectBindings...)
	bindings = append(bindings, prefixed("g", selectGotoBindings)...)
	bindings = append(bindings, sharedPrefixBindings()...)
	return mustBuild("select", sharedGroups, bindings)
}

// DefaultInsert returns the built-in insert mode table.
func DefaultInsert() *Node {
	return mustBuild("insert", nil, insertBindings)
}

func mustBuild(name string, groups []Group, bindings []Binding) *Node {
	n, err := Build(DefaultRegistry(), name, groups, bindings)
	if err != nil {
		panic("keymap: building " + name + " defaults: " + err.Error())
	}
	return n
}

var sharedGroups = []Group{
	{Keys: "g", Name: "goto"},
	{Keys: "]", Name: "next"},
	{Keys: "[", Name: "prev"},
	{Keys: "space", Name: "space"},
	{Keys: "m", Name: "match"},
	{Keys: "z", Name: "view"},
	{Keys: "Z", Name: "view", Sticky: true},
}

func sharedPrefixBindings() []Binding {
	var out []Binding
	out = append(out, prefixed("]", nextBindings)...)
	out = append(out, prefixed("[", prevBindings)...)
	out = append(out, prefixed("space", spaceBindings)...)
	out = append(out, prefixed("m", matchBindings)...)
	out = append(out, prefixed("z", viewBindings)...)
	out = append(out, prefixed("Z", viewBindings)...)
	return out
}

var normalBindings = []Binding{
	// Movement
	{Keys: "h", Action: "move_char_left", Description: "Move left"},
	{Keys: "l", Action: "move_char_right", Description: "Move right"},
	{Keys: "j", Action: "move_line_down", Description: "Move down"},
	{Keys: "k", Action: "move_line_up", Description: "Move up"},
	{Keys: "left", Action: "move_char_left", Description: "Move left"},
	{Keys: "right", Action: "move_char_right", Description: "Move right"},
	{Keys: "down", Action: "move_line_down", Description: "Move down"},
	{Keys: "up", Action: "move_line_up", Description: "Move up"},
	{Keys: "w", Action: "move_next_word_start", Description: "Next word start"},
	{Keys: "b", Action: "move_prev_word_start", Description: "Previous word start"},
	{Keys: "e", Action: "move_next_word_end", Description: "Next word end"},
	{Keys: "W", Action: "move_next_long_word_start", Description: "Next WORD start"},
	{Keys: "B", Action: "move_prev_long_word_start", Description: "Previous WORD start"},
	{Keys: "E", Action: "move_next_long_word_end", Description: "Next WORD end"},
	{Keys: "0", Action: "goto_line_start", Description: "Line start"},
	{Keys: "home", Action: "goto_line_start", Description: "Line start"},
	{Keys: "$", Action: "goto_line_end", Description: "Line end"},
	{Keys: "end", Action: "goto_line_end", Description: "Line end"},
	{Keys: "G", Action: "goto_file_end", Description: "Last line"},
	{Keys: "pageup", Action: "page_up", Description: "Page up"},
	{Keys: "pagedown", Action: "page_down", Description: "Page down"},

	// Mode changes
	{Keys: "i", Action: "insert_mode", Description: "Insert before selection"},
	{Keys: "I", Action: "insert_at_line_start", Description: "Insert at line start"},
	{Keys: "a", Action: "append_mode", Description: "Append after selection"},
	{Keys: "A", Action: "insert_at_line_end", Description: "Append at line end"},
	{Keys: "o", Action: "open_below", Description: "Open line below"},
	{Keys: "O", Action: "open_above", Description: "Open line above"},
	{Keys: "v", Action: "select_mode", Description: "Enter select mode"},

	// Editing
	{Keys: "c", Action: "change_selection", Description: "Change selection"},
	{Keys: "d", Action: "delete_selection", Description: "Delete selection"},
	{Keys: "R", Action: "replace_with_yanked", Description: "Replace with yanked"},
	{Keys: "J", Action: "join_selections", Description: "Join lines"},
	{Keys: "&", Action: "align_selections", Description: "Align selections"},
	{Keys: "_", Action: "trim_selections", Description: "Trim selections"},
	{Keys: "=", Action: "format_selections", Description: "Format selections"},
	{Keys: "s", Action: "select_regex", Description: "Select regex matches"},
	{Keys: "S", Action: "split_selection", Description: "Split selection on regex"},
	{Keys: "C", Action: "copy_selection_on_next_line", Description: "Copy selection to next line"},
	{Keys: ")", Action: "rotate_selections_forward", Description: "Rotate selections forward"},
	{Keys: "(", Action: "rotate_selections_backward", Description: "Rotate selections backward"},
	{Keys: "u", Action: "undo", Description: "Undo"},
	{Keys: "U", Action: "redo", Description: "Redo"},
	{Keys: "x", Action: "select_line", Description: "Select line"},
	{Keys: "X", Action: "extend_to_line_bounds", Description: "Extend to line bounds"},
	{Keys: "p", Action: "paste_after", Description: "Paste after"},
	{Keys: "P", Action: "paste_before", Description: "Paste before"},
	{Keys: "y", Action: "yank", Description: "Yank"},

	// Search
	{Keys: "/", Action: "search", Description: "Search forward"},
	{Keys: "?", Action: "rsearch", Description: "Search backward"},
	{Keys: "n", Action: "search_next", Description: "Next match"},
	{Keys: "N", Action: "search_prev", Description: "Previous match"},
	{Keys: "*", Action: "search_word_under_cursor", Description: "Search word under cursor"},

	{Keys: ":", Action: "command_mode", Description: "Command mode"},
	{Keys: ";", Action: "collapse_selection", Description: "Collapse selection"},
	{Keys: ",", Action: "keep_primary_selection", Description: "Keep primary selection"},
	{Keys: ">", Action: "indent", Description: "Indent"},
	{Keys: "<", Action: "unindent", Description: "Unindent"},
	{Keys: "%", Action: "select_all", Description: "Select all"},
	{Keys: "~", Action: "switch_case", Description: "Switch case"},
	{Keys: "`", Action: "switch_to_lowercase", Description: "Lowercase"},
	{Keys: "K", Action: "hover", Description: "Hover"},
	{Keys: "|", Action: "shell_pipe", Description: "Pipe through shell"},
	{Keys: "!", Action: "shell_insert_output", Description: "Insert shell output"},
	{Keys: "Q", Action: "record_macro", Description: "Record macro"},
	{Keys: "q", Action: "replay_macro", Description: "Replay macro"},
	{Keys: ".", Action: "repeat_last_insert", Description: "Repeat last insert"},
	{Keys: "esc", Action: "collapse_selection", Description: "Collapse selection"},

	// Await-char
	{Keys: "f", Action: "find_char", Description: "Find char forward"},
	{Keys: "F", Action: "find_char_reverse", Description: "Find char backward"},
	{Keys: "t", Action: "find_till_char", Description: "Till char forward"},
	{Keys: "T", Action: "find_till_char_reverse", Description: "Till char backward"},
	{Keys: "r", Action: "replace", Description: "Replace char"},
	{Keys: "\"", Action: "select_register", Description: "Select register"},

	// Alt
	{Keys: "A-.", Action: "repeat_last_motion", Description: "Repeat last motion"},
	{Keys: "A-;", Action: "flip_selections", Description: "Flip selections"},
	{Keys: "A-`", Action: "switch_to_uppercase", Description: "Uppercase"},
	{Keys: "A-c", Action: "change_selection_noyank", Description: "Change without yank"},
	{Keys: "A-C", Action: "copy_selection_on_prev_line", Description: "Copy selection to previous line"},
	{Keys: "A-d", Action: "delete_selection_noyank", Description: "Delete without yank"},
	{Keys: "A-s", Action: "split_selection_on_newline", Description: "Split on newline"},
	{Keys: "A-x", Action: "shrink_to_line_bounds", Description: "Shrink to line bounds"},
	{Keys: "A-o", Action: "expand_selection", Description: "Expand selection"},
	{Keys: "A-i", Action: "shrink_selection", Description: "Shrink selection"},
	{Keys: "A-|", Action: "shell_pipe_to", Description: "Pipe to shell"},
	{Keys: "A-!", Action: "shell_append_output", Description: "Append shell output"},

	// Ctrl
	{Keys: "C-b", Action: "page_up", Description: "Page up"},
	{Keys: "C-c", Action: "toggle_comments", Description: "Toggle comments"},
	{Keys: "C-d", Action: "half_page_down", Description: "Half page down"},
	{Keys: "C-f", Action: "page_down", Description: "Page down"},
	{Keys: "C-h", Action: "goto_previous_buffer", Description: "Previous buffer"},
	{Keys: "C-l", Action: "goto_next_buffer", Description: "Next buffer"},
	{Keys: "C-a", Action: "increment", Description: "Increment"},
	{Keys: "C-i", Action: "jump_forward", Description: "Jump forward"},
	{Keys: "C-o", Action: "jump_backward", Description: "Jump backward"},
	{Keys: "C-r", Action: "redo", Description: "Redo"},
	{Keys: "C-s", Action: "save_selection", Description: "Save selection"},
	{Keys: "C-u", Action: "half_page_up", Description: "Half page up"},
	{Keys: "C-x", Action: "decrement", Description: "Decrement"},
	{Keys: "C-space", Action: "code_action", Description: "Code actions"},
	{Keys: "C-.", Action: "code_action", Description: "Code actions"},
}

var gotoBindings = []Binding{
	{Keys: ".", Action: "goto_last_modification", Description: "Last modification"},
	{Keys: "a", Action: "goto_last_accessed_file", Description: "Last accessed file"},
	{Keys: "b", Action: "goto_window_bottom", Description: "Window bottom"},
	{Keys: "c", Action: "goto_window_center", Description: "Window center"},
	{Keys: "D", Action: "goto_declaration", Description: "Declaration"},
	{Keys: "d", Action: "goto_definition", Description: "Definition"},
	{Keys: "e", Action: "goto_file_end", Description: "Last line"},
	{Keys: "f", Action: "goto_file", Description: "File under cursor"},
	{Keys: "g", Action: "goto_file_start", Description: "First line"},
	{Keys: "h", Action: "goto_line_start", Description: "Line start"},
	{Keys: "i", Action: "goto_implementation", Description: "Implementation"},
	{Keys: "j", Action: "move_line_down", Description: "Move down"},
	{Keys: "k", Action: "move_line_up", Description: "Move up"},
	{Keys: "l", Action: "goto_line_end", Description: "Line end"},
	{Keys: "m", Action: "goto_last_modified_file", Description: "Last modified file"},
	{Keys: "n", Action: "goto_next_buffer", Description: "Next buffer"},
	{Keys: "p", Action: "goto_previous_buffer", Description: "Previous buffer"},
	{Keys: "r", Action: "goto_reference", Description: "References"},
	{Keys: "s", Action: "goto_first_nonwhitespace", Description: "First non-blank"},
	{Keys: "t", Action: "goto_window_top", Description: "Window top"},
	{Keys: "w", Action: "goto_word", Description: "Jump to word"},
	{Keys: "y", Action: "goto_type_definition", Description: "Type definition"},
	{Keys: "|", Action: "goto_column", Description: "Column"},
}

var selectGotoBindings = []Binding{
	{Keys: "g", Action: "extend_to_file_start", Description: "Extend to first line"},
	{Keys: "e", Action: "extend_to_file_end", Description: "Extend to last line"},
	{Keys: "h", Action: "extend_to_line_start", Description: "Extend to line start"},
	{Keys: "l", Action: "extend_to_line_end", Description: "Extend to line end"},
	{Keys: "s", Action: "extend_to_first_nonwhitespace", Description: "Extend to first non-blank"},
	{Keys: "|", Action: "extend_to_column", Description: "Extend to column"},
	{Keys: "d", Action: "goto_definition", Description: "Definition"},
	{Keys: "D", Action: "goto_declaration", Description: "Declaration"},
	{Keys: "y", Action: "goto_type_definition", Description: "Type definition"},
	{Keys: "i", Action: "goto_implementation", Description: "Implementation"},
	{Keys: "r", Action: "goto_reference", Description: "References"},
	{Keys: "f", Action: "goto_file", Description: "File under cursor"},
	{Keys: "w", Action: "extend_to_word", Description: "Extend to word"},
	{Keys: "t", Action: "goto_window_top", Description: "Window top"},
	{Keys: "c", Action: "goto_window_center", Description: "Window center"},
	{Keys: "b", Action: "goto_window_bottom", Description: "Window bottom"},
	{Keys: "n", Action: "goto_next_buffer", Description: "Next buffer"},
	{Keys: "p", Action: "goto_previous_buffer", Description: "Previous buffer"},
	{Keys: "a", Action: "goto_last_accessed_file", Description: "Last accessed file"},
	{Keys: "m", Action: "goto_last_modified_file", Description: "Last modified file"},
	{Keys: ".", Action: "goto_last_modification", Description: "Last modification"},
}

var nextBindings = []Binding{
	{Keys: "a", Action: "goto_next_parameter", Description: "Next parameter"},
	{Keys: "c", Action: "goto_next_comment", Description: "Next comment"},
	{Keys: "d", Action: "goto_next_diag", Description: "Next diagnostic"},
	{Keys: "f", Action: "goto_next_function", Description: "Next function"},
	{Keys: "p", Action: "goto_next_paragraph", Description: "Next paragraph"},
	{Keys: "t", Action: "goto_next_class", Description: "Next class"},
	{Keys: "g", Action: "goto_next_change", Description: "Next change"},
	{Keys: "D", Action: "goto_last_diag", Description: "Last diagnostic"},
	{Keys: "G", Action: "goto_last_change", Description: "Last change"},
	{Keys: "space", Action: "add_newline_below", Description: "Add newline below"},
}

var prevBindings = []Binding{
	{Keys: "a", Action: "goto_prev_parameter", Description: "Previous parameter"},
	{Keys: "c", Action: "goto_prev_comment", Description: "Previous comment"},
	{Keys: "d", Action: "goto_prev_diag", Description: "Previous diagnostic"},
	{Keys: "f", Action: "goto_prev_function", Description: "Previous function"},
	{Keys: "g", Action: "goto_prev_change", Description: "Previous change"},
	{Keys: "p", Action: "goto_prev_paragraph", Description: "Previous paragraph"},
	{Keys: "t", Action: "goto_prev_class", Description: "Previous class"},
	{Keys: "D", Action: "goto_first_diag", Description: "First diagnostic"},
	{Keys: "G", Action: "goto_first_change", Description: "First change"},
	{Keys: "space", Action: "add_newline_above", Description: "Add newline above"},
}

// clipboard prefixes a command with selecting the system clipboard register.
func clipboard(name string) Slot {
	return Seq(command.SetSelectedRegister('+'), command.New(name))
}

var spaceBindings = []Binding{
	{Keys: "/", Action: "global_search", Description: "Global search"},
	{Keys: "?", Action: "command_palette", Description: "Command palette"},
	{Keys: "a", Action: "code_action", Description: "Code actions"},
	{Keys: "c", Action: "toggle_comments", Description: "Toggle comments"},
	{Keys: "C", Action: "toggle_block_comments", Description: "Toggle block comments"},
	{Keys: "b", Action: "buffer_picker", Description: "Buffers"},
	{Keys: "d", Action: "diagnostics_picker", Description: "Diagnostics"},
	{Keys: "e", Action: "file_explorer", Description: "File explorer"},
	{Keys: "E", Action: "file_explorer_in_current_buffer_directory", Description: "File explorer in buffer directory"},
	{Keys: "D", Action: "workspace_diagnostics_picker", Description: "Workspace diagnostics"},
	{Keys: "f", Action: "file_picker", Description: "Files"},
	{Keys: "g", Action: "changed_file_picker", Description: "Changed files"},
	{Keys: "F", Action: "file_picker_in_current_buffer_directory", Description: "Files in buffer directory"},
	{Keys: "h", Action: "select_references_to_symbol_under_cursor", Description: "Select references"},
	{Keys: "i", Action: "toggle_inlay_hints", Description: "Toggle inlay hints"},
	{Keys: "j", Action: "jumplist_picker", Description: "Jump list"},
	{Keys: "k", Action: "hover", Description: "Hover"},
	{Keys: "p", Slot: clipboard(command.NamePaste), Description: "Paste clipboard after"},
	{Keys: "P", Slot: clipboard(command.NamePasteBefore), Description: "Paste clipboard before"},
	{Keys: "r", Action: "rename_symbol", Description: "Rename symbol"},
	{Keys: "R", Slot: clipboard(command.NameReplaceWithYanked), Description: "Replace with clipboard"},
	{Keys: "s", Action: "symbol_picker", Description: "Symbols"},
	{Keys: "S", Action: "workspace_symbol_picker", Description: "Workspace symbols"},
	{Keys: "y", Slot: clipboard(command.NameYank), Description: "Yank to clipboard"},
	{Keys: "Y", Slot: clipboard(command.NameYankMainSelectionToClipboard), Description: "Yank main selection to clipboard"},
	{Keys: "'", Action: "last_picker", Description: "Last picker"},
}

var matchBindings = []Binding{
	{Keys: "m", Action: "match_brackets", Description: "Matching bracket"},
	{Keys: "i", Action: "select_textobject_inner", Description: "Select inside pair"},
	{Keys: "a", Action: "select_textobject_around", Description: "Select around pair"},
	{Keys: "s", Action: "surround_add", Description: "Add surround"},
	{Keys: "d", Action: "surround_delete", Description: "Delete surround"},
	{Keys: "r", Action: "surround_replace", Description: "Replace surround"},
}

var viewBindings = []Binding{
	{Keys: "z", Action: "align_view_center", Description: "Center view"},
	{Keys: "c", Action: "align_view_center", Description: "Center view"},
	{Keys: "m", Action: "align_view_center", Description: "Center view"},
	{Keys: "t", Action: "align_view_top", Description: "View to top"},
	{Keys: "b", Action: "align_view_bottom", Description: "View to bottom"},
	{Keys: "k", Action: "scroll_up", Description: "Scroll up"},
	{Keys: "up", Action: "scroll_up", Description: "Scroll up"},
	{Keys: "j", Action: "scroll_down", Description: "Scroll down"},
	{Keys: "down", Action: "scroll_down", Description: "Scroll down"},
	{Keys: "pageup", Action: "page_up", Description: "Page up"},
	{Keys: "pagedown", Action: "page_down", Description: "Page down"},
	{Keys: "backspace", Action: "half_page_up", Description: "Half page up"},
	{Keys: "space", Action: "half_page_down", Description: "Half page down"},
	{Keys: "C-b", Action: "page_up", Description: "Page up"},
	{Keys: "C-f", Action: "page_down", Description: "Page down"},
	{Keys: "C-u", Action: "half_page_up", Description: "Half page up"},
	{Keys: "C-d", Action: "half_page_down", Description: "Half page down"},
	{Keys: "/", Action: "search", Description: "Search forward"},
	{Keys: "?", Action: "rsearch", Description: "Search backward"},
	{Keys: "n", Action: "search_next", Description: "Next match"},
	{Keys: "N", Action: "search_prev", Description: "Previous match"},
}

var selectBindings = []Binding{
	{Keys: "h", Action: "extend_char_left", Description: "Extend left"},
	{Keys: "l", Action: "extend_char_right", Description: "Extend right"},
	{Keys: "j", Action: "extend_line_down", Description: "Extend down"},
	{Keys: "k", Action: "extend_line_up", Description: "Extend up"},
	{Keys: "left", Action: "extend_char_left", Description: "Extend left"},
	{Keys: "right", Action: "extend_char_right", Description: "Extend right"},
	{Keys: "down", Action: "extend_line_down", Description: "Extend down"},
	{Keys: "up", Action: "extend_line_up", Description: "Extend up"},
	{Keys: "esc", Action: "exit_select_mode", Description: "Exit select mode"},
	{Keys: "v", Action: "exit_select_mode", Description: "Exit select mode"},
	{Keys: "w", Action: "extend_next_word_start", Description: "Extend to next word"},
	{Keys: "b", Action: "extend_prev_word_start", Description: "Extend to previous word"},
	{Keys: "e", Action: "extend_next_word_end", Description: "Extend to word end"},
	{Keys: "W", Action: "extend_next_long_word_start", Description: "Extend to next WORD"},
	{Keys: "B", Action: "extend_prev_long_word_start", Description: "Extend to previous WORD"},
	{Keys: "E", Action: "extend_next_long_word_end", Description: "Extend to WORD end"},
	{Keys: "0", Action: "extend_line_start", Description: "Extend to line start"},
	{Keys: "home", Action: "extend_line_start", Description: "Extend to line start"},
	{Keys: "$", Action: "extend_line_end", Description: "Extend to line end"},
	{Keys: "end", Action: "extend_line_end", Description: "Extend to line end"},
	{Keys: "pageup", Action: "page_up", Description: "Page up"},
	{Keys: "pagedown", Action: "page_down", Description: "Page down"},
	{Keys: "x", Action: "select_line", Description: "Select line"},
	{Keys: "X", Action: "extend_line", Description: "Extend line"},
	{Keys: "y", Actions: []string{"yank", "exit_select_mode"}, Description: "Yank and exit"},
	{Keys: "d", Action: "delete_selection", Description: "Delete selection"},
	{Keys: "c", Action: "change_selection", Description: "Change selection"},
	{Keys: "n", Action: "extend_search_next", Description: "Extend to next match"},
	{Keys: "N", Action: "extend_search_prev", Description: "Extend to previous match"},
	{Keys: "R", Action: "replace_with_yanked", Description: "Replace with yanked"},
	{Keys: "p", Action: "replace_with_yanked", Description: "Replace with yanked"},
	{Keys: ">", Action: "indent", Description: "Indent"},
	{Keys: "<", Action: "unindent", Description: "Unindent"},
	{Keys: ";", Action: "collapse_selection", Description: "Collapse selection"},
	{Keys: ",", Action: "keep_primary_selection", Description: "Keep primary selection"},
	{Keys: "s", Action: "select_regex", Description: "Select regex matches"},
	{Keys: "S", Action: "split_selection", Description: "Split selection on regex"},
	{Keys: "C", Action: "copy_selection_on_next_line", Description: "Copy selection to next line"},
	{Keys: ")", Action: "rotate_selections_forward", Description: "Rotate selections forward"},
	{Keys: "(", Action: "rotate_selections_backward", Description: "Rotate selections backward"},
	{Keys: "|", Action: "shell_pipe", Description: "Pipe through shell"},
	{Keys: "!", Action: "shell_insert_output", Description: "Insert shell output"},
	{Keys: "Q", Action: "record_macro", Description: "Record macro"},
	{Keys: "q", Action: "replay_macro", Description: "Replay macro"},
	{Keys: "f", Action: "find_char", Description: "Extend to char forward"},
	{Keys: "F", Action: "find_char_reverse", Description: "Extend to char backward"},
	{Keys: "t", Action: "find_till_char", Description: "Extend till char forward"},
	{Keys: "T", Action: "find_till_char_reverse", Description: "Extend till char backward"},
	{Keys: "r", Action: "replace", Description: "Replace char"},
	{Keys: "\"", Action: "select_register", Description: "Select register"},
	{Keys: "A-;", Action: "flip_selections", Description: "Flip selections"},
	{Keys: "A-C", Action: "copy_selection_on_prev_line", Description: "Copy selection to previous line"},
	{Keys: "A-s", Action: "split_selection_on_newline", Description: "Split on newline"},
	{Keys: "A-o", Action: "expand_selection", Description: "Expand selection"},
	{Keys: "A-i", Action: "shrink_selection", Description: "Shrink selection"},
	{Keys: "A-|", Action: "shell_pipe_to", Description: "Pipe to shell"},
	{Keys: "A-!", Action: "shell_append_output", Description: "Append shell output"},
	{Keys: "C-c", Action: "toggle_comments", Description: "Toggle comments"},
	{Keys: "C-i", Action: "jump_forward", Description: "Jump forward"},
	{Keys: "C-o", Action: "jump_backward", Description: "Jump backward"},
	{Keys: "C-s", Action: "save_selection", Description: "Save selection"},
}

var insertBindings = []Binding{
	{Keys: "esc", Action: "normal_mode", Description: "Exit insert mode"},
	{Keys: "tab", Action: "insert_tab", Description: "Insert tab"},
	{Keys: "S-tab", Action: "unindent", Description: "Unindent"},
	{Keys: "ret", Action: "insert_newline", Description: "Insert newline"},
	{Keys: "backspace", Action: "delete_char_backward", Description: "Delete char backward"},
	{Keys: "del", Action: "delete_char_forward", Description: "Delete char forward"},
	{Keys: "left", Action: "move_char_left", Description: "Move left"},
	{Keys: "right", Action: "move_char_right", Description: "Move right"},
	{Keys: "up", Action: "move_line_up", Description: "Move up"},
	{Keys: "down", Action: "move_line_down", Description: "Move down"},
	{Keys: "home", Action: "goto_line_start", Description: "Line start"},
	{Keys: "end", Action: "goto_line_end", Description: "Line end"},
	{Keys: "pageup", Action: "page_up", Description: "Page up"},
	{Keys: "pagedown", Action: "page_down", Description: "Page down"},
	{Keys: "A-d", Action: "delete_word_forward", Description: "Delete word forward"},
	{Keys: "A-backspace", Action: "delete_word_backward", Description: "Delete word backward"},
	{Keys: "C-M-space", Action: "emoji_picker", Description: "Emoji picker"},
	{Keys: "C-c", Action: "toggle_comments", Description: "Toggle comments"},
	{Keys: "C-d", Action: "delete_char_forward", Description: "Delete char forward"},
	{Keys: "C-h", Action: "delete_char_backward", Description: "Delete char backward"},
	{Keys: "C-j", Action: "insert_newline", Description: "Insert newline"},
	{Keys: "C-k", Action: "kill_to_line_end", Description: "Kill to line end"},
	{Keys: "C-space", Action: "completion", Description: "Completion"},
	{Keys: "C-.", Action: "code_action", Description: "Code actions"},
	{Keys: "C-s", Action: "commit_undo_checkpoint", Description: "Commit undo checkpoint"},
	{Keys: "C-w", Action: "delete_word_backward", Description: "Delete word backward"},
	{Keys: "C-x", Action: "completion", Description: "Completion"},
	{Keys: "C-u", Action: "kill_to_line_start", Description: "Delete to line start"},
	{Keys: "C-r", Action: "insert_register", Description: "Insert register"},
}
