package list_test

import (
	"github.com/cozy/listedit-go/editor"
	"github.com/cozy/listedit-go/model"
	"github.com/cozy/listedit-go/test/builder"

	. "github.com/cozy/listedit-go/list"
)

var (
	doc      = builder.Doc
	p        = builder.P
	bulleted = builder.Bulleted
	numbered = builder.Numbered
	at       = builder.At

	builderRange = builder.Range
)

// newEditor builds an editor with the list feature enabled and a
// deterministic identity sequence i0, i1, ...
func newEditor(d *model.Document, sel model.Selection) *editor.Editor {
	e := editor.New(d, editor.WithIDGenerator(&model.SequenceGenerator{Prefix: "i"}))
	Editing(e)
	e.SetSelection(sel)
	return e
}
