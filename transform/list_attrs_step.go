package transform

import (
	"fmt"

	"github.com/cozy/listedit-go/model"
)

// SetListAttrsStep changes the list attributes of a single block. A nil
// Attrs clears them, converting the block back to a plain paragraph.
type SetListAttrsStep struct {
	Index int
	Attrs *model.ListAttrs
}

// NewSetListAttrsStep is the constructor for SetListAttrsStep.
func NewSetListAttrsStep(index int, attrs *model.ListAttrs) *SetListAttrsStep {
	return &SetListAttrsStep{Index: index, Attrs: attrs}
}

// Apply is a method of the Step interface.
func (s *SetListAttrsStep) Apply(doc *model.Document) StepResult {
	target := doc.MaybeBlock(s.Index)
	if target == nil {
		return Fail(fmt.Sprintf("no block at index %d", s.Index))
	}
	return OK(doc.ReplaceBlock(s.Index, target.WithList(s.Attrs)))
}

// Invert is a method of the Step interface.
func (s *SetListAttrsStep) Invert(doc *model.Document) Step {
	var attrs *model.ListAttrs
	if target := doc.MaybeBlock(s.Index); target != nil {
		attrs = target.List
	}
	return NewSetListAttrsStep(s.Index, attrs)
}

var _ Step = &SetListAttrsStep{}
