package restricted

import (
	"github.com/cozy/listedit-go/editor"
	"github.com/cozy/listedit-go/model"
	"github.com/cozy/listedit-go/transform"
)

// Exception is the name under which the toggle command registers.
const Exception = "restrictedEditingException"

// exceptionCommand toggles an editable-exception marker over the selection.
// With the selection inside an existing exception the marker is removed;
// otherwise a new marker covering the selected span is added.
type exceptionCommand struct {
	set *MarkerSet
	ids model.IDGenerator
}

// NewExceptionCommand is the constructor for the toggle command.
func NewExceptionCommand(set *MarkerSet, ids model.IDGenerator) editor.Command {
	return &exceptionCommand{set: set, ids: ids}
}

// Enabled is a method of the Command interface. The command is enabled for
// a selection within a single block that either covers a non-empty span or
// sits inside an existing exception.
func (c *exceptionCommand) Enabled(s *editor.State) bool {
	sel := s.Selection
	if !sel.Valid(s.Doc) || sel.From().Block != sel.To().Block {
		return false
	}
	if c.set.At(sel.From()) != nil {
		return true
	}
	return !sel.Collapsed()
}

// Execute is a method of the Command interface. The command mutates marker
// state only, so it records no document steps.
func (c *exceptionCommand) Execute(s *editor.State, tr *transform.Transform) {
	sel := s.Selection
	if m := c.set.At(sel.From()); m != nil && m.Contains(sel.To()) {
		c.set.Remove(m.ID)
		return
	}
	from, to := sel.From(), sel.To()
	// Add only fails on overlap, which Enabled has already excluded for the
	// span's start; a partial overlap at the end is declined silently.
	_ = c.set.Add(&Marker{
		ID:    c.ids.Next(),
		Block: from.Block,
		From:  from.Offset,
		To:    to.Offset,
	})
}

// Editing wires restricted editing mode into an editor and returns the
// marker set holding its exceptions. The set is clamped against the
// document after every change.
func Editing(e *editor.Editor) *MarkerSet {
	set := NewMarkerSet()
	e.Register(Exception, NewExceptionCommand(set, e.IDs()))
	e.OnChange(func(doc *model.Document, changed []int) {
		set.Clamp(doc)
	})
	return set
}
