package keymap

import (
	"github.com/dshills/keychord/internal/input/command"
)

type builtinEntry struct {
	name string
	slot Slot
}

func named(name string) Slot { return Cmd(command.New(name)) }

// builtinCommands lists the names accepted in configuration.
var builtinCommands = []builtinEntry{
	// Movement
	{"move_char_left", named(command.NameMoveLeft)},
	{"move_char_right", named(command.NameMoveRight)},
	{"move_visual_line_up", named(command.NameMoveUp)},
	{"move_visual_line_down", named(command.NameMoveDown)},
	{"move_line_up", named(command.NameMoveUp)},
	{"move_line_down", named(command.NameMoveDown)},
	{"move_next_word_start", named(command.NameMoveWordForward)},
	{"move_prev_word_start", named(command.NameMoveWordBackward)},
	{"move_next_word_end", named(command.NameMoveWordEnd)},
	{"move_next_long_word_start", named(command.NameMoveLongWordForward)},
	{"move_prev_long_word_start", named(command.NameMoveLongWordBackward)},
	{"move_next_long_word_end", named(command.NameMoveLongWordEnd)},
	{"goto_line_start", named(command.NameMoveLineStart)},
	{"goto_line_end", named(command.NameMoveLineEnd)},
	{"goto_first_nonwhitespace", named(command.NameGotoFirstNonWhitespace)},
	{"goto_column", named(command.NameGotoColumn)},
	{"goto_file_start", named(command.NameGotoFirstLine)},
	{"goto_file_end", named(command.NameGotoLastLine)},
	{"goto_window_top", named(command.NameGotoWindowTop)},
	{"goto_window_center", named(command.NameGotoWindowCenter)},
	{"goto_window_bottom", named(command.NameGotoWindowBottom)},
	{"goto_last_accessed_file", named(command.NameGotoLastAccessedFile)},
	{"goto_last_modified_file", named(command.NameGotoLastModifiedFile)},
	{"goto_last_modification", named(command.NameGotoLastModification)},
	{"half_page_up", named(command.NameHalfPageUp)},
	{"half_page_down", named(command.NameHalfPageDown)},
	{"page_up", named(command.NamePageUp)},
	{"page_down", named(command.NamePageDown)},
	{"find_char", AwaitChar(AwaitFindForward)},
	{"find_char_reverse", AwaitChar(AwaitFindBackward)},
	{"find_till_char", AwaitChar(AwaitTillForward)},
	{"find_till_char_reverse", AwaitChar(AwaitTillBackward)},
	{"repeat_last_motion", named(command.NameRepeatLastFind)},
	{"search_word_under_cursor", named(command.NameSearchWordUnderCursor)},
	{"match_brackets", named(command.NameMatchBracket)},
	{"align_view_center", named(command.NameAlignViewCenter)},
	{"align_view_top", named(command.NameAlignViewTop)},
	{"align_view_bottom", named(command.NameAlignViewBottom)},

	// Scroll
	{"scroll_up", Cmd(command.ScrollUp(1))},
	{"scroll_down", Cmd(command.ScrollDown(1))},

	// Mode changes
	{"insert_mode", named(command.NameEnterInsertMode)},
	{"insert_at_line_start", named(command.NameEnterInsertModeLineStart)},
	{"append_mode", named(command.NameEnterInsertModeAfter)},
	{"insert_at_line_end", named(command.NameEnterInsertModeLineEnd)},
	{"open_below", named(command.NameOpenLineBelow)},
	{"open_above", named(command.NameOpenLineAbove)},
	{"normal_mode", named(command.NameExitInsertMode)},
	{"select_mode", named(command.NameEnterSelectMode)},

	// Editing
	{"change_selection", named(command.NameChangeSelection)},
	{"change_selection_noyank", named(command.NameChangeSelectionNoYank)},
	{"replace", AwaitChar(AwaitReplaceChar)},
	{"join_selections", named(command.NameJoinLines)},
	{"toggle_comments", named(command.NameToggleLineComment)},
	{"toggle_block_comments", named(command.NameToggleBlockComment)},
	{"indent", named(command.NameIndentLine)},
	{"unindent", named(command.NameUnindentLine)},
	{"switch_case", named(command.NameToggleCase)},
	{"switch_to_lowercase", named(command.NameToLowercase)},
	{"switch_to_uppercase", named(command.NameToUppercase)},
	{"increment", named(command.NameIncrement)},
	{"decrement", named(command.NameDecrement)},
	{"align_selections", named(command.NameAlignSelections)},
	{"add_newline_below", named(command.NameAddNewlineBelow)},
	{"add_newline_above", named(command.NameAddNewlineAbove)},

	// History
	{"undo", named(command.NameUndo)},
	{"redo", named(command.NameRedo)},
	{"commit_undo_checkpoint", named(command.NameCommitUndoCheckpoint)},

	// Selection
	{"select_all", named(command.NameSelectAll)},
	{"select_line", named(command.NameSelectLine)},
	{"extend_line", named(command.NameExtendLine)},
	{"extend_to_line_bounds", named(command.NameExtendToLineBounds)},
	{"shrink_to_line_bounds", named(command.NameShrinkToLineBounds)},
	{"collapse_selection", named(command.NameCollapseSelection)},
	{"flip_selections", named(command.NameFlipSelections)},
	{"keep_primary_selection", named(command.NameKeepPrimarySelection)},
	{"trim_selections", named(command.NameTrimSelections)},
	{"expand_selection", named(command.NameExpandSelection)},
	{"shrink_selection", named(command.NameShrinkSelection)},

	// Extend movement
	{"extend_char_left", named(command.NameExtendLeft)},
	{"extend_char_right", named(command.NameExtendRight)},
	{"extend_line_up", named(command.NameExtendUp)},
	{"extend_line_down", named(command.NameExtendDown)},
	{"extend_next_word_start", named(command.NameExtendWordForward)},
	{"extend_prev_word_start", named(command.NameExtendWordBackward)},
	{"extend_next_word_end", named(command.NameExtendWordEnd)},
	{"extend_next_long_word_start", named(command.NameExtendLongWordForward)},
	{"extend_prev_long_word_start", named(command.NameExtendLongWordBackward)},
	{"extend_next_long_word_end", named(command.NameExtendLongWordEnd)},
	{"extend_line_start", named(command.NameExtendLineStart)},
	{"extend_line_end", named(command.NameExtendLineEnd)},
	{"extend_to_first_nonwhitespace", named(command.NameExtendGotoFirstNonWhitespace)},
	{"extend_goto_column", named(command.NameExtendGotoColumn)},
	{"extend_to_file_start", named(command.NameExtendToFirstLine)},
	{"extend_to_file_end", named(command.NameExtendToLastLine)},
	{"extend_search_next", named(command.NameExtendSearchNext)},
	{"extend_search_prev", named(command.NameExtendSearchPrev)},

	// Multi-selection
	{"split_selection_on_newline", named(command.NameSplitSelectionOnNewline)},
	{"copy_selection_on_next_line", named(command.NameCopySelectionOnNextLine)},
	{"copy_selection_on_prev_line", named(command.NameCopySelectionOnPrevLine)},
	{"rotate_selections_forward", named(command.NameRotateSelectionsForward)},
	{"rotate_selections_backward", named(command.NameRotateSelectionsBackward)},

	// Clipboard
	{"yank", named(command.NameYank)},
	{"yank_main_selection_to_clipboard", named(command.NameYankMainSelectionToClipboard)},
	{"paste_after", named(command.NamePaste)},
	{"paste_before", named(command.NamePasteBefore)},
	{"delete_selection", named(command.NameDeleteSelection)},
	{"delete_selection_noyank", named(command.NameDeleteSelectionNoYank)},
	{"replace_with_yanked", named(command.NameReplaceWithYanked)},
	{"select_register", AwaitChar(AwaitSelectRegister)},

	// Surround and text objects
	{"select_textobject_inner", AwaitChar(AwaitSelectInsidePair)},
	{"select_textobject_around", AwaitChar(AwaitSelectAroundPair)},
	{"surround_add", AwaitChar(AwaitSurroundAdd)},
	{"surround_delete", AwaitChar(AwaitSurroundDelete)},
	{"surround_replace", AwaitChar(AwaitSurroundReplaceFrom)},

	// Search
	{"search", Cmd(command.EnterSearchMode(false))},
	{"rsearch", Cmd(command.EnterSearchMode(true))},
	{"search_next", named(command.NameSearchNext)},
	{"search_prev", named(command.NameSearchPrevious)},

	// Regex
	{"select_regex", Cmd(command.EnterRegexMode(false))},
	{"split_selection", Cmd(command.EnterRegexMode(true))},

	// Command mode
	{"command_mode", named(command.NameEnterCommandMode)},

	// Pickers
	{"file_picker", named(command.NameShowFilePicker)},
	{"file_picker_in_current_buffer_directory", named(command.NameShowFilePickerInBufferDir)},
	{"file_explorer", named(command.NameShowFileExplorer)},
	{"file_explorer_in_current_buffer_directory", named(command.NameShowFileExplorerInBufDir)},
	{"buffer_picker", named(command.NameShowBufferPicker)},
	{"symbol_picker", named(command.NameShowDocumentSymbols)},
	{"workspace_symbol_picker", named(command.NameShowWorkspaceSymbols)},
	{"diagnostics_picker", named(command.NameShowDocumentDiagnostics)},
	{"workspace_diagnostics_picker", named(command.NameShowWorkspaceDiagnostics)},
	{"changed_file_picker", named(command.NameShowChangedFilesPicker)},
	{"global_search", named(command.NameShowGlobalSearch)},
	{"command_palette", named(command.NameShowCommandPanel)},
	{"jumplist_picker", named(command.NameShowJumpListPicker)},
	{"last_picker", named(command.NameShowLastPicker)},
	{"theme_picker", named(command.NameShowThemePicker)},
	{"emoji_picker", named(command.NameShowEmojiPicker)},

	// Buffer navigation
	{"goto_next_buffer", named(command.NameNextBuffer)},
	{"goto_previous_buffer", named(command.NamePreviousBuffer)},

	// Language server
	{"goto_definition", named(command.NameGotoDefinition)},
	{"goto_declaration", named(command.NameGotoDeclaration)},
	{"goto_type_definition", named(command.NameGotoTypeDefinition)},
	{"goto_implementation", named(command.NameGotoImplementation)},
	{"goto_reference", named(command.NameGotoReferences)},
	{"goto_file", named(command.NameGotoFileUnderCursor)},
	{"hover", named(command.NameTriggerHover)},
	{"rename_symbol", named(command.NameRenameSymbol)},
	{"code_action", named(command.NameShowCodeActions)},
	{"select_references_to_symbol_under_cursor", named(command.NameSelectReferencesToSymbol)},
	{"format_selections", named(command.NameFormatSelections)},
	{"toggle_inlay_hints", named(command.NameToggleInlayHints)},
	{"completion", named(command.NameTriggerCompletion)},
	{"signature_help", named(command.NameTriggerSignatureHelp)},

	// Diagnostics
	{"goto_next_diag", named(command.NameNextDiagnostic)},
	{"goto_prev_diag", named(command.NamePrevDiagnostic)},
	{"goto_first_diag", named(command.NameGotoFirstDiagnostic)},
	{"goto_last_diag", named(command.NameGotoLastDiagnostic)},

	// Syntax-tree navigation
	{"goto_next_function", named(command.NameNextFunction)},
	{"goto_prev_function", named(command.NamePrevFunction)},
	{"goto_next_class", named(command.NameNextClass)},
	{"goto_prev_class", named(command.NamePrevClass)},
	{"goto_next_parameter", named(command.NameNextParameter)},
	{"goto_prev_parameter", named(command.NamePrevParameter)},
	{"goto_next_comment", named(command.NameNextComment)},
	{"goto_prev_comment", named(command.NamePrevComment)},
	{"goto_next_paragraph", named(command.NameNextParagraph)},
	{"goto_prev_paragraph", named(command.NamePrevParagraph)},

	// Version control
	{"goto_next_change", named(command.NameNextChange)},
	{"goto_prev_change", named(command.NamePrevChange)},
	{"goto_first_change", named(command.NameGotoFirstChange)},
	{"goto_last_change", named(command.NameGotoLastChange)},

	// Shell
	{"shell_pipe", Cmd(command.EnterShellMode(command.ShellReplace))},
	{"shell_pipe_to", Cmd(command.EnterShellMode(command.ShellIgnore))},
	{"shell_insert_output", Cmd(command.EnterShellMode(command.ShellInsert))},
	{"shell_append_output", Cmd(command.EnterShellMode(command.ShellAppend))},

	// Jump list
	{"jump_backward", named(command.NameJumpBackward)},
	{"jump_forward", named(command.NameJumpForward)},
	{"save_selection", named(command.NameSaveSelection)},

	// Word jump
	{"goto_word", named(command.NameGotoWord)},
	{"extend_to_word", named(command.NameExtendToWord)},

	// Macros and repeat
	{"record_macro", named(command.NameToggleMacroRecording)},
	{"replay_macro", named(command.NameReplayMacro)},
	{"repeat_last_insert", named(command.NameRepeatLastInsert)},

	// Insert mode
	{"insert_tab", named(command.NameInsertTab)},
	{"insert_newline", named(command.NameInsertNewline)},
	{"delete_char_backward", named(command.NameDeleteCharBackward)},
	{"delete_char_forward", named(command.NameDeleteCharForward)},
	{"delete_word_backward", named(command.NameDeleteWordBackward)},
	{"delete_word_forward", named(command.NameDeleteWordForward)},
	{"kill_to_line_start", named(command.NameDeleteToLineStart)},
	{"kill_to_line_end", named(command.NameKillToLineEnd)},
	{"insert_register", AwaitChar(AwaitInsertRegister)},

	// Aliases for helix-term names
	{"goto_line_end_newline", named(command.NameMoveLineEnd)},
	{"page_cursor_up", named(command.NamePageUp)},
	{"page_cursor_down", named(command.NamePageDown)},
	{"page_cursor_half_up", named(command.NameHalfPageUp)},
	{"page_cursor_half_down", named(command.NameHalfPageDown)},
	{"find_next_char", AwaitChar(AwaitFindForward)},
	{"find_prev_char", AwaitChar(AwaitFindBackward)},
	{"till_prev_char", AwaitChar(AwaitTillBackward)},
	{"extend_next_char", AwaitChar(AwaitFindForward)},
	{"extend_prev_char", AwaitChar(AwaitFindBackward)},
	{"extend_till_char", AwaitChar(AwaitTillForward)},
	{"extend_till_prev_char", AwaitChar(AwaitTillBackward)},
	{"exit_select_mode", named(command.NameExitSelectMode)},
	{"toggle_line_comments", named(command.NameToggleLineComment)},
	{"extend_to_line_start", named(command.NameExtendLineStart)},
	{"extend_to_line_end", named(command.NameExtendLineEnd)},
	{"extend_to_line_end_newline", named(command.NameExtendLineEnd)},
	{"extend_to_column", named(command.NameExtendGotoColumn)},
	{"extend_visual_line_up", named(command.NameExtendUp)},
	{"extend_visual_line_down", named(command.NameExtendDown)},
	{"earlier", Cmd(command.Earlier(1))},
	{"later", Cmd(command.Later(1))},
	{"file_picker_in_current_directory", named(command.NameShowFilePicker)},
	{"file_explorer_in_current_directory", named(command.NameShowFileExplorer)},
}
