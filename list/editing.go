package list

import "github.com/cozy/listedit-go/editor"

// Editing wires the list feature into an editor: the indent and outdent
// commands, the Enter and Backspace pipeline stages, the Tab and Shift+Tab
// keybindings, and the repair pass.
func Editing(e *editor.Editor) {
	e.Register(IndentList, NewIndentCommand(e.IDs()))
	e.Register(OutdentList, NewOutdentCommand(e.IDs()))
	e.AddKeyHandler(NewEnterHandler(e.IDs()))
	e.AddKeyHandler(NewBackspaceHandler())
	e.Bind(editor.KeyTab, false, IndentList)
	e.Bind(editor.KeyTab, true, OutdentList)
	e.AddFixer(NewFixer(e.IDs()))
}
