package list

import (
	"github.com/cozy/listedit-go/editor"
	"github.com/cozy/listedit-go/model"
	"github.com/cozy/listedit-go/transform"
)

// NewFixer returns the repair pass restoring the structural invariants of
// list blocks after arbitrary edits (paste, undo, programmatic mutation):
//
//   - the first list block of a run sits at indent zero, and no block
//     indents more than one level past the list block before it;
//   - an item identity names exactly one contiguous run of blocks with a
//     uniform indent and list type — a re-appearing or structurally torn
//     identity is split off under a fresh one.
//
// The pass appends its rewrites to the transform it is given, so consumers
// observe the mutation and its repair as one update.
func NewFixer(ids model.IDGenerator) editor.Fixer {
	return func(tr *transform.Transform) {
		fixIndents(tr)
		fixIdentities(tr, ids)
	}
}

// fixIndents clamps indent levels so that they never jump by more than one
// from the preceding list block, starting each run of list blocks at zero.
func fixIndents(tr *transform.Transform) {
	doc := tr.Doc
	prev := -1 // indent of the previous list block, -1 at a run start
	for i := 0; i < doc.ChildCount(); i++ {
		attrs := doc.Block(i).List
		if attrs == nil {
			prev = -1
			continue
		}
		if max := prev + 1; attrs.Indent > max {
			tr.SetListAttrs(i, attrs.WithIndent(max))
			prev = max
		} else {
			prev = attrs.Indent
		}
	}
}

// run tracks the current contiguous run of blocks sharing an item identity.
type run struct {
	origID string // identity as found in the document
	itemID string // identity after any renaming
	indent int
	typ    model.ListType
}

// fixIdentities restores identity contiguity. A block continues the current
// run only when it carries the run's original identity with the same indent
// and type; any other reuse of an already-seen identity gets a fresh one.
func fixIdentities(tr *transform.Transform, ids model.IDGenerator) {
	doc := tr.Doc
	closed := map[string]bool{}
	var cur *run
	for i := 0; i < doc.ChildCount(); i++ {
		attrs := doc.Block(i).List
		if attrs == nil {
			if cur != nil {
				closed[cur.origID] = true
				cur = nil
			}
			continue
		}
		if cur != nil && attrs.ItemID == cur.origID &&
			attrs.Indent == cur.indent && attrs.Type == cur.typ {
			if cur.itemID != cur.origID {
				tr.SetListAttrs(i, attrs.WithItemID(cur.itemID))
			}
			continue
		}
		if cur != nil {
			closed[cur.origID] = true
		}
		itemID := attrs.ItemID
		if closed[attrs.ItemID] || (cur != nil && cur.origID == attrs.ItemID) {
			itemID = ids.Next()
			tr.SetListAttrs(i, attrs.WithItemID(itemID))
		}
		cur = &run{origID: attrs.ItemID, itemID: itemID, indent: attrs.Indent, typ: attrs.Type}
	}
}
