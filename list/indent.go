package list

import (
	"github.com/cozy/listedit-go/editor"
	"github.com/cozy/listedit-go/model"
	"github.com/cozy/listedit-go/transform"
)

// Names under which the indent and outdent commands register.
const (
	IndentList  = "indentList"
	OutdentList = "outdentList"
)

// indentCommand changes the indent of the list item under the selection
// anchor, forward or backward by one level.
type indentCommand struct {
	backward bool
	ids      model.IDGenerator
}

// NewIndentCommand creates the forward-indent command. The identity
// generator supplies fresh item identities when an indent change splits a
// block range off its old item.
func NewIndentCommand(ids model.IDGenerator) editor.Command {
	return &indentCommand{ids: ids}
}

// NewOutdentCommand creates the backward-indent command.
func NewOutdentCommand(ids model.IDGenerator) editor.Command {
	return &indentCommand{backward: true, ids: ids}
}

// Enabled is a method of the Command interface. The commands are enabled
// exactly when the selection's anchor block is a list block.
func (c *indentCommand) Enabled(s *editor.State) bool {
	return IsListBlock(s.Doc.MaybeBlock(s.Selection.Anchor.Block))
}

// Execute is a method of the Command interface.
//
// The affected range is the anchor block plus its following same-item
// siblings. Forward indent is capped at one level past the preceding
// sibling's indent, so a block can never nest deeper than the block before
// it allows; an attempt beyond the cap records nothing. Backward indent
// below zero removes list membership entirely, converting the blocks back to
// plain paragraphs.
//
// When the affected range does not start at its item's first block, the
// indent change tears it away from the blocks it used to share an identity
// with, so the range receives a fresh identity of its own.
func (c *indentCommand) Execute(s *editor.State, tr *transform.Transform) {
	index := s.Selection.Anchor.Block
	attrs := s.Doc.Block(index).List
	itemStart, itemEnd := ItemRange(s.Doc, index)

	indent := attrs.Indent - 1
	if !c.backward {
		indent = attrs.Indent + 1
		if indent > maxIndent(s.Doc, index) {
			return
		}
	}

	if indent < 0 {
		for i := index; i <= itemEnd; i++ {
			tr.SetListAttrs(i, nil)
		}
		return
	}

	itemID := attrs.ItemID
	if index > itemStart {
		itemID = c.ids.Next()
	}
	next := &model.ListAttrs{ItemID: itemID, Indent: indent, Type: attrs.Type}
	for i := index; i <= itemEnd; i++ {
		tr.SetListAttrs(i, next)
	}
}

// maxIndent is the deepest indent the block at index may take: one level
// past the preceding sibling's indent, or zero when there is no preceding
// list block.
func maxIndent(doc *model.Document, index int) int {
	prev := doc.MaybeBlock(index - 1)
	if !IsListBlock(prev) {
		return 0
	}
	return prev.List.Indent + 1
}
