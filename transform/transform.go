package transform

import (
	"errors"

	"github.com/cozy/listedit-go/model"
)

// Transform accumulates steps against a starting document. All steps of a
// transform are observed by consumers as one indivisible update: the editor
// applies a whole transform, so partial states are never exposed to
// rendering or listeners.
type Transform struct {
	// The current document, the result of applying the steps so far.
	Doc *model.Document
	// The steps in this transform.
	Steps []Step
	// The documents before each of the steps.
	Docs []*model.Document
}

// NewTransform creates a transform that starts with the given document.
func NewTransform(doc *model.Document) *Transform {
	return &Transform{Doc: doc}
}

// Step applies a new step to this transform, saving the result.
// Returns an error when the step fails.
func (tr *Transform) Step(s Step) error {
	result := s.Apply(tr.Doc)
	if result.Failed != "" {
		return errors.New(result.Failed)
	}
	tr.Docs = append(tr.Docs, tr.Doc)
	tr.Steps = append(tr.Steps, s)
	tr.Doc = result.Doc
	return nil
}

// Before returns the starting document of this transform.
func (tr *Transform) Before() *model.Document {
	if len(tr.Docs) == 0 {
		return tr.Doc
	}
	return tr.Docs[0]
}

// DocChanged reports whether the document has been changed, that is, when
// there are any steps.
func (tr *Transform) DocChanged() bool {
	return len(tr.Steps) > 0
}

// SetListAttrs records a SetListAttrsStep for the block at the given index.
// Only index-out-of-range can make the step fail, which is a programming
// error, so a failure panics.
func (tr *Transform) SetListAttrs(index int, attrs *model.ListAttrs) *Transform {
	if err := tr.Step(NewSetListAttrsStep(index, attrs)); err != nil {
		panic(err)
	}
	return tr
}

// InsertBlock records an InsertBlockStep. Panics on an out-of-range index.
func (tr *Transform) InsertBlock(index int, block *model.Block) *Transform {
	if err := tr.Step(NewInsertBlockStep(index, block)); err != nil {
		panic(err)
	}
	return tr
}

// RemoveBlock records a RemoveBlockStep. Panics on an out-of-range index.
func (tr *Transform) RemoveBlock(index int) *Transform {
	if err := tr.Step(NewRemoveBlockStep(index)); err != nil {
		panic(err)
	}
	return tr
}
