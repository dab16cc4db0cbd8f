// Package markdown serializes documents as Markdown/CommonMark text.
package markdown

import (
	"strconv"
	"strings"

	"github.com/cozy/listedit-go/model"
)

// Serialize renders a document as Markdown. List blocks become list lines
// with four spaces of indentation per nesting level; continuation blocks of
// a multi-block item render as indented lines under the item's marker, and
// plain blocks become paragraphs separated by blank lines.
func Serialize(doc *model.Document) string {
	st := serializerState{}
	for i := 0; i < doc.ChildCount(); i++ {
		st.renderBlock(doc.Block(i))
	}
	return st.out.String()
}

type serializerState struct {
	out strings.Builder
	// counters holds the current ordinal per indent level for numbered
	// lists.
	counters []int
	// itemID is the identity of the most recently rendered list item.
	itemID string
	inList bool
}

func (st *serializerState) renderBlock(b *model.Block) {
	if b.List == nil {
		st.closeList()
		if st.out.Len() > 0 {
			st.out.WriteString("\n")
		}
		st.out.WriteString(b.Text)
		st.out.WriteString("\n")
		return
	}
	attrs := b.List
	if !st.inList {
		if st.out.Len() > 0 {
			st.out.WriteString("\n")
		}
		st.inList = true
	}

	// Dropping back to a shallower level resets the deeper counters.
	if len(st.counters) > attrs.Indent+1 {
		st.counters = st.counters[:attrs.Indent+1]
	}
	for len(st.counters) < attrs.Indent+1 {
		st.counters = append(st.counters, 0)
	}

	indent := strings.Repeat("    ", attrs.Indent)
	if attrs.ItemID == st.itemID {
		// Continuation block of the current item: no marker, one extra
		// level of indentation to stay inside the item.
		st.out.WriteString(indent + "    " + b.Text + "\n")
		return
	}
	st.itemID = attrs.ItemID
	marker := "- "
	if attrs.Type == model.Numbered {
		st.counters[attrs.Indent]++
		marker = strconv.Itoa(st.counters[attrs.Indent]) + ". "
	}
	st.out.WriteString(indent + marker + b.Text + "\n")
}

func (st *serializerState) closeList() {
	st.counters = st.counters[:0]
	st.itemID = ""
	st.inList = false
}
