// Package command defines the editor command values that key bindings
// resolve to.
//
// A Command is an opaque, comparable value: the dispatcher emits commands
// in order and never inspects them. Names use the dotted "area.action"
// form, for example "cursor.moveLeft" or "clipboard.paste". A few
// commands carry a parameter, such as the character for a find motion
// or the register for a register selection.
//
//	cmd := command.FindCharForward('x')
//	cmd.Name  // "cursor.findCharForward"
//	cmd.Char  // 'x'
package command
