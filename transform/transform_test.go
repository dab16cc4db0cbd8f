package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cozy/listedit-go/model"
	"github.com/cozy/listedit-go/test/builder"
	. "github.com/cozy/listedit-go/transform"
)

var (
	doc      = builder.Doc
	p        = builder.P
	bulleted = builder.Bulleted
)

func TestSetListAttrsStep(t *testing.T) {
	before := doc(p("a"), p("b"))
	attrs := model.MustListAttrs("x1", 0, model.Bulleted)

	// applies the attributes to the addressed block only
	result := NewSetListAttrsStep(1, attrs).Apply(before)
	assert.Empty(t, result.Failed)
	assert.True(t, result.Doc.Eq(doc(p("a"), bulleted("x1", 0, "b"))))

	// a nil value clears membership
	result = NewSetListAttrsStep(0, nil).Apply(doc(bulleted("x1", 0, "a")))
	assert.Empty(t, result.Failed)
	assert.True(t, result.Doc.Eq(doc(p("a"))))

	// fails on an out-of-range index
	assert.NotEmpty(t, NewSetListAttrsStep(2, attrs).Apply(before).Failed)
}

func TestSetListAttrsStepInvert(t *testing.T) {
	before := doc(bulleted("x1", 1, "a"))
	step := NewSetListAttrsStep(0, nil)

	after := step.Apply(before).Doc
	restored := step.Invert(before).Apply(after).Doc
	assert.True(t, restored.Eq(before))
}

func TestBlockSteps(t *testing.T) {
	before := doc(p("a"), p("c"))

	insert := NewInsertBlockStep(1, p("b"))
	inserted := insert.Apply(before)
	assert.Empty(t, inserted.Failed)
	assert.True(t, inserted.Doc.Eq(doc(p("a"), p("b"), p("c"))))

	// inverting the insert removes the block again
	removed := insert.Invert(before).Apply(inserted.Doc)
	assert.Empty(t, removed.Failed)
	assert.True(t, removed.Doc.Eq(before))

	// inverting a remove restores the removed block
	remove := NewRemoveBlockStep(0)
	restored := remove.Invert(before).Apply(remove.Apply(before).Doc)
	assert.True(t, restored.Doc.Eq(before))

	// out-of-range indexes fail
	assert.NotEmpty(t, NewInsertBlockStep(3, p("x")).Apply(before).Failed)
	assert.NotEmpty(t, NewRemoveBlockStep(2).Apply(before).Failed)
}

func TestTransform(t *testing.T) {
	before := doc(p("a"), p("b"))
	tr := NewTransform(before)
	assert.False(t, tr.DocChanged())
	assert.Same(t, before, tr.Before())

	attrs := model.MustListAttrs("x1", 0, model.Bulleted)
	tr.SetListAttrs(0, attrs).SetListAttrs(1, attrs.WithItemID("x2"))

	// steps accumulate against the running document
	assert.True(t, tr.DocChanged())
	assert.Len(t, tr.Steps, 2)
	assert.True(t, tr.Doc.Eq(doc(bulleted("x1", 0, "a"), bulleted("x2", 0, "b"))))

	// the starting document is retained
	assert.Same(t, before, tr.Before())
	assert.Same(t, before, tr.Docs[0])

	// a failing step reports an error and leaves the transform alone
	err := tr.Step(NewRemoveBlockStep(5))
	assert.Error(t, err)
	assert.Len(t, tr.Steps, 2)
}
