package transform

import (
	"fmt"

	"github.com/cozy/listedit-go/model"
)

// InsertBlockStep inserts a block before the given index. The index may
// equal the document's block count to append at the end.
type InsertBlockStep struct {
	Index int
	Block *model.Block
}

// NewInsertBlockStep is the constructor for InsertBlockStep.
func NewInsertBlockStep(index int, block *model.Block) *InsertBlockStep {
	return &InsertBlockStep{Index: index, Block: block}
}

// Apply is a method of the Step interface.
func (s *InsertBlockStep) Apply(doc *model.Document) StepResult {
	if s.Index < 0 || s.Index > doc.ChildCount() {
		return Fail(fmt.Sprintf("insert index %d out of range", s.Index))
	}
	return OK(doc.InsertBlock(s.Index, s.Block))
}

// Invert is a method of the Step interface.
func (s *InsertBlockStep) Invert(doc *model.Document) Step {
	return NewRemoveBlockStep(s.Index)
}

// RemoveBlockStep removes the block at the given index.
type RemoveBlockStep struct {
	Index int
}

// NewRemoveBlockStep is the constructor for RemoveBlockStep.
func NewRemoveBlockStep(index int) *RemoveBlockStep {
	return &RemoveBlockStep{Index: index}
}

// Apply is a method of the Step interface.
func (s *RemoveBlockStep) Apply(doc *model.Document) StepResult {
	if doc.MaybeBlock(s.Index) == nil {
		return Fail(fmt.Sprintf("no block at index %d", s.Index))
	}
	return OK(doc.RemoveBlock(s.Index))
}

// Invert is a method of the Step interface.
func (s *RemoveBlockStep) Invert(doc *model.Document) Step {
	return NewInsertBlockStep(s.Index, doc.Block(s.Index))
}

var (
	_ Step = &InsertBlockStep{}
	_ Step = &RemoveBlockStep{}
)
