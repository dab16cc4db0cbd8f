package list

import (
	"github.com/cozy/listedit-go/editor"
	"github.com/cozy/listedit-go/model"
	"github.com/cozy/listedit-go/transform"
)

// enterHandler intercepts Enter inside an empty list block. Pressing Enter
// in the trailing empty block of a multi-block item splits that block off as
// a new, empty list item; pressing it in the only block of an item outdents
// the item instead. Every other Enter is left to the host's default
// handling.
type enterHandler struct {
	ids model.IDGenerator
}

// NewEnterHandler creates the Enter stage of the key pipeline.
func NewEnterHandler(ids model.IDGenerator) editor.KeyHandler {
	return &enterHandler{ids: ids}
}

// HandleKey is a method of the KeyHandler interface.
func (h *enterHandler) HandleKey(e *editor.Editor, ev *editor.KeyEvent) {
	if ev.Key != editor.KeyEnter || ev.Prevented() {
		return
	}
	sel := e.Selection()
	if !sel.Collapsed() {
		return
	}
	doc := e.Doc()
	index := sel.Anchor.Block
	block := doc.MaybeBlock(index)
	if !IsListBlock(block) || !block.Empty() {
		return
	}

	start, end := ItemRange(doc, index)
	if index == end && SameList(block, doc.MaybeBlock(index-1)) {
		// Trailing empty block of a multi-block item: give it an identity
		// of its own. The preceding blocks keep theirs.
		tr := transform.NewTransform(doc)
		tr.SetListAttrs(index, block.List.WithItemID(h.ids.Next()))
		e.Apply(tr)
		ev.PreventDefault()
		ev.StopPropagation()
		return
	}
	if start == end {
		// The only block of its item: step the item out one level.
		if e.Execute(OutdentList) {
			ev.PreventDefault()
			ev.StopPropagation()
		}
	}
}

// backspaceHandler intercepts Backspace at the very start of the first list
// block in a run: with no preceding list block to merge into, the item
// outdents instead. Every other Backspace is left to the host's default
// handling, which merges the block with its previous sibling.
type backspaceHandler struct{}

// NewBackspaceHandler creates the Backspace stage of the key pipeline.
func NewBackspaceHandler() editor.KeyHandler {
	return backspaceHandler{}
}

// HandleKey is a method of the KeyHandler interface.
func (backspaceHandler) HandleKey(e *editor.Editor, ev *editor.KeyEvent) {
	if ev.Key != editor.KeyBackspace || ev.Direction != editor.DirBackward || ev.Prevented() {
		return
	}
	sel := e.Selection()
	if !sel.AtBlockStart() {
		return
	}
	doc := e.Doc()
	index := sel.Anchor.Block
	block := doc.MaybeBlock(index)
	if !IsListBlock(block) {
		return
	}
	start, _ := ItemRange(doc, index)
	if index != start || IsListBlock(doc.MaybeBlock(index-1)) {
		return
	}
	if e.Execute(OutdentList) {
		ev.PreventDefault()
		ev.StopPropagation()
	}
}
