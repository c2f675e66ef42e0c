package command

// Command names, grouped by area.
const (
	// Cursor movement
	NameMoveLeft               = "cursor.moveLeft"
	NameMoveRight              = "cursor.moveRight"
	NameMoveUp                 = "cursor.moveUp"
	NameMoveDown               = "cursor.moveDown"
	NameMoveWordForward        = "cursor.wordForward"
	NameMoveWordBackward       = "cursor.wordBackward"
	NameMoveWordEnd            = "cursor.wordEnd"
	NameMoveLongWordForward    = "cursor.bigWordForward"
	NameMoveLongWordBackward   = "cursor.bigWordBackward"
	NameMoveLongWordEnd        = "cursor.bigWordEnd"
	NameMoveLineStart          = "cursor.moveLineStart"
	NameMoveLineEnd            = "cursor.moveLineEnd"
	NameGotoFirstNonWhitespace = "cursor.firstNonBlank"
	NameGotoColumn             = "cursor.gotoColumn"
	NameGotoFirstLine          = "cursor.moveFirstLine"
	NameGotoLastLine           = "cursor.moveLastLine"
	NameGotoWindowTop          = "cursor.screenTop"
	NameGotoWindowCenter       = "cursor.screenMiddle"
	NameGotoWindowBottom       = "cursor.screenBottom"
	NameGotoLastModification   = "cursor.lastModification"
	NameGotoWord               = "cursor.gotoWord"
	NameMatchBracket           = "cursor.matchingBracket"
	NameFindCharForward        = "cursor.findCharForward"
	NameFindCharBackward       = "cursor.findCharBackward"
	NameTillCharForward        = "cursor.tillCharForward"
	NameTillCharBackward       = "cursor.tillCharBackward"
	NameRepeatLastFind         = "cursor.repeatFind"

	// View and scrolling
	NameHalfPageUp      = "view.halfPageUp"
	NameHalfPageDown    = "view.halfPageDown"
	NamePageUp          = "view.pageUp"
	NamePageDown        = "view.pageDown"
	NameScrollUp        = "view.scrollUp"
	NameScrollDown      = "view.scrollDown"
	NameAlignViewCenter = "view.centerCursor"
	NameAlignViewTop    = "view.topCursor"
	NameAlignViewBottom = "view.bottomCursor"

	// Mode changes
	NameEnterInsertMode          = "mode.insert"
	NameEnterInsertModeLineStart = "mode.insertLineStart"
	NameEnterInsertModeAfter     = "mode.append"
	NameEnterInsertModeLineEnd   = "mode.appendLineEnd"
	NameOpenLineBelow            = "mode.openBelow"
	NameOpenLineAbove            = "mode.openAbove"
	NameExitInsertMode           = "mode.exitInsert"
	NameEnterSelectMode          = "mode.select"
	NameExitSelectMode           = "mode.exitSelect"
	NameEnterCommandMode         = "mode.command"

	// Editing
	NameChangeSelection       = "edit.change"
	NameChangeSelectionNoYank = "edit.changeNoYank"
	NameReplaceChar           = "edit.replaceChar"
	NameJoinLines             = "edit.joinLines"
	NameToggleLineComment     = "edit.toggleLineComment"
	NameToggleBlockComment    = "edit.toggleBlockComment"
	NameIndentLine            = "edit.indent"
	NameUnindentLine          = "edit.unindent"
	NameToggleCase            = "edit.toggleCase"
	NameToLowercase           = "edit.lowercase"
	NameToUppercase           = "edit.uppercase"
	NameIncrement             = "edit.increment"
	NameDecrement             = "edit.decrement"
	NameAlignSelections       = "edit.alignSelections"
	NameAddNewlineBelow       = "edit.newlineBelow"
	NameAddNewlineAbove       = "edit.newlineAbove"
	NameFormatSelections      = "edit.format"
	NameSurroundAdd           = "edit.surroundAdd"
	NameSurroundDelete        = "edit.surroundDelete"
	NameSurroundReplace       = "edit.surroundReplace"
	NameRepeatLastInsert      = "edit.repeatLastInsert"

	// History
	NameUndo                 = "history.undo"
	NameRedo                 = "history.redo"
	NameCommitUndoCheckpoint = "history.checkpoint"
	NameEarlier              = "history.earlier"
	NameLater                = "history.later"

	// Selection
	NameSelectAll                = "selection.all"
	NameSelectLine               = "selection.line"
	NameExtendLine               = "selection.extendLine"
	NameExtendToLineBounds       = "selection.extendToLineBounds"
	NameShrinkToLineBounds       = "selection.shrinkToLineBounds"
	NameCollapseSelection        = "selection.collapse"
	NameFlipSelections           = "selection.flip"
	NameKeepPrimarySelection     = "selection.keepPrimary"
	NameTrimSelections           = "selection.trim"
	NameExpandSelection          = "selection.expand"
	NameShrinkSelection          = "selection.shrink"
	NameSelectInsidePair         = "selection.insidePair"
	NameSelectAroundPair         = "selection.aroundPair"
	NameSplitSelectionOnNewline  = "selection.splitOnNewline"
	NameCopySelectionOnNextLine  = "selection.copyToNextLine"
	NameCopySelectionOnPrevLine  = "selection.copyToPrevLine"
	NameRotateSelectionsForward  = "selection.rotateForward"
	NameRotateSelectionsBackward = "selection.rotateBackward"
	NameSaveSelection            = "selection.save"
	NameSelectRegex              = "selection.regex"
	NameSplitSelection           = "selection.split"

	// Selection extension
	NameExtendLeft                   = "extend.left"
	NameExtendRight                  = "extend.right"
	NameExtendUp                     = "extend.up"
	NameExtendDown                   = "extend.down"
	NameExtendWordForward            = "extend.wordForward"
	NameExtendWordBackward           = "extend.wordBackward"
	NameExtendWordEnd                = "extend.wordEnd"
	NameExtendLongWordForward        = "extend.bigWordForward"
	NameExtendLongWordBackward       = "extend.bigWordBackward"
	NameExtendLongWordEnd            = "extend.bigWordEnd"
	NameExtendLineStart              = "extend.lineStart"
	NameExtendLineEnd                = "extend.lineEnd"
	NameExtendGotoFirstNonWhitespace = "extend.firstNonBlank"
	NameExtendGotoColumn             = "extend.gotoColumn"
	NameExtendToFirstLine            = "extend.firstLine"
	NameExtendToLastLine             = "extend.lastLine"
	NameExtendSearchNext             = "extend.searchNext"
	NameExtendSearchPrev             = "extend.searchPrev"
	NameExtendToWord                 = "extend.toWord"
	NameExtendFindCharForward        = "extend.findCharForward"
	NameExtendFindCharBackward       = "extend.findCharBackward"
	NameExtendTillCharForward        = "extend.tillCharForward"
	NameExtendTillCharBackward       = "extend.tillCharBackward"

	// Clipboard and registers
	NameYank                         = "clipboard.yank"
	NameYankMainSelectionToClipboard = "clipboard.yankMainToClipboard"
	NamePaste                        = "clipboard.paste"
	NamePasteBefore                  = "clipboard.pasteBefore"
	NameDeleteSelection              = "clipboard.delete"
	NameDeleteSelectionNoYank        = "clipboard.deleteNoYank"
	NameReplaceWithYanked            = "clipboard.replaceWithYanked"
	NameSetSelectedRegister          = "register.select"
	NameInsertRegister               = "register.insert"

	// Search
	NameSearchForward         = "search.forward"
	NameSearchBackward        = "search.backward"
	NameSearchNext            = "search.next"
	NameSearchPrevious        = "search.previous"
	NameSearchWordUnderCursor = "search.wordUnderCursor"

	// Pickers
	NameShowFilePicker            = "picker.files"
	NameShowFilePickerInBufferDir = "picker.filesInBufferDir"
	NameShowFileExplorer          = "picker.explorer"
	NameShowFileExplorerInBufDir  = "picker.explorerInBufferDir"
	NameShowBufferPicker          = "picker.buffers"
	NameShowDocumentSymbols       = "picker.symbols"
	NameShowWorkspaceSymbols      = "picker.workspaceSymbols"
	NameShowDocumentDiagnostics   = "picker.diagnostics"
	NameShowWorkspaceDiagnostics  = "picker.workspaceDiagnostics"
	NameShowChangedFilesPicker    = "picker.changedFiles"
	NameShowGlobalSearch          = "picker.globalSearch"
	NameShowCommandPanel          = "picker.commands"
	NameShowJumpListPicker        = "picker.jumpList"
	NameShowLastPicker            = "picker.last"
	NameShowThemePicker           = "picker.themes"
	NameShowEmojiPicker           = "picker.emoji"

	// Buffers and files
	NameNextBuffer           = "buffer.next"
	NamePreviousBuffer       = "buffer.previous"
	NameGotoLastAccessedFile = "buffer.lastAccessed"
	NameGotoLastModifiedFile = "buffer.lastModified"
	NameGotoFileUnderCursor  = "buffer.fileUnderCursor"

	// Language server
	NameGotoDefinition           = "lsp.definition"
	NameGotoDeclaration          = "lsp.declaration"
	NameGotoTypeDefinition       = "lsp.typeDefinition"
	NameGotoImplementation       = "lsp.implementation"
	NameGotoReferences           = "lsp.references"
	NameTriggerHover             = "lsp.hover"
	NameRenameSymbol             = "lsp.rename"
	NameShowCodeActions          = "lsp.codeActions"
	NameSelectReferencesToSymbol = "lsp.selectReferences"
	NameToggleInlayHints         = "lsp.toggleInlayHints"
	NameTriggerCompletion        = "lsp.completion"
	NameTriggerSignatureHelp     = "lsp.signatureHelp"

	// Diagnostics
	NameNextDiagnostic      = "diagnostic.next"
	NamePrevDiagnostic      = "diagnostic.previous"
	NameGotoFirstDiagnostic = "diagnostic.first"
	NameGotoLastDiagnostic  = "diagnostic.last"

	// Syntax-tree navigation
	NameNextFunction  = "goto.nextFunction"
	NamePrevFunction  = "goto.prevFunction"
	NameNextClass     = "goto.nextClass"
	NamePrevClass     = "goto.prevClass"
	NameNextParameter = "goto.nextParameter"
	NamePrevParameter = "goto.prevParameter"
	NameNextComment   = "goto.nextComment"
	NamePrevComment   = "goto.prevComment"
	NameNextParagraph = "goto.nextParagraph"
	NamePrevParagraph = "goto.prevParagraph"

	// Version control hunks
	NameNextChange      = "vcs.nextChange"
	NamePrevChange      = "vcs.prevChange"
	NameGotoFirstChange = "vcs.firstChange"
	NameGotoLastChange  = "vcs.lastChange"

	// Shell, jumps, macros
	NameEnterShellMode       = "shell.prompt"
	NameJumpBackward         = "jump.backward"
	NameJumpForward          = "jump.forward"
	NameToggleMacroRecording = "macro.toggleRecording"
	NameReplayMacro          = "macro.replay"

	// Insert mode
	NameInsertTab          = "insert.tab"
	NameInsertNewline      = "insert.newline"
	NameDeleteCharBackward = "insert.deleteCharBackward"
	NameDeleteCharForward  = "insert.deleteCharForward"
	NameDeleteWordBackward = "insert.deleteWordBackward"
	NameDeleteWordForward  = "insert.deleteWordForward"
	NameDeleteToLineStart  = "insert.deleteToLineStart"
	NameKillToLineEnd      = "insert.killToLineEnd"

	// Typable colon commands
	NameTypable = "command.typable"
)
