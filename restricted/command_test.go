package restricted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cozy/listedit-go/editor"
	"github.com/cozy/listedit-go/model"
	. "github.com/cozy/listedit-go/restricted"
	"github.com/cozy/listedit-go/test/builder"
	"github.com/cozy/listedit-go/transform"
)

func newRestrictedEditor(d *model.Document) (*editor.Editor, *MarkerSet) {
	e := editor.New(d, editor.WithIDGenerator(&model.SequenceGenerator{Prefix: "m"}))
	set := Editing(e)
	return e, set
}

func TestExceptionCommandEnabled(t *testing.T) {
	e, set := newRestrictedEditor(doc(p("hello world"), p("bye")))

	// a non-empty selection within one block enables the command
	e.SetSelection(builder.Range(0, 0, 0, 5))
	assert.True(t, e.Enabled(Exception))

	// a collapsed selection outside any exception does not
	e.SetSelection(at(0, 2))
	assert.False(t, e.Enabled(Exception))

	// a selection spanning blocks does not
	e.SetSelection(builder.Range(0, 0, 1, 1))
	assert.False(t, e.Enabled(Exception))

	// a collapsed selection inside an exception does
	assert.NoError(t, set.Add(&Marker{ID: "x", Block: 0, From: 6, To: 11}))
	e.SetSelection(at(0, 8))
	assert.True(t, e.Enabled(Exception))
}

func TestExceptionCommandToggles(t *testing.T) {
	e, set := newRestrictedEditor(doc(p("hello world")))

	// executing over a span adds an exception with a generated identity
	e.SetSelection(builder.Range(0, 0, 0, 5))
	assert.True(t, e.Execute(Exception))
	m := set.At(model.Position{Block: 0, Offset: 3})
	if assert.NotNil(t, m) {
		assert.Equal(t, "m0", m.ID)
		assert.Equal(t, 0, m.From)
		assert.Equal(t, 5, m.To)
	}

	// executing inside the exception removes it again
	e.SetSelection(at(0, 2))
	assert.True(t, e.Execute(Exception))
	assert.Nil(t, set.At(model.Position{Block: 0, Offset: 3}))
}

func TestMarkersClampedOnChange(t *testing.T) {
	e, set := newRestrictedEditor(doc(p("hello world"), p("bye")))
	e.SetSelection(builder.Range(0, 6, 0, 11))
	assert.True(t, e.Execute(Exception))

	// shortening the block through a transform trims the marker with it
	tr := transform.NewTransform(e.Doc())
	tr.RemoveBlock(1)
	assert.NoError(t, tr.Step(replaceText{index: 0, text: "hello"}))
	e.Apply(tr)

	m := set.At(model.Position{Block: 0, Offset: 5})
	if assert.NotNil(t, m) {
		assert.Equal(t, 5, m.From)
		assert.Equal(t, 5, m.To)
	}
}

// replaceText is a minimal test step standing in for the host's text
// editing.
type replaceText struct {
	index int
	text  string
}

func (s replaceText) Apply(d *model.Document) transform.StepResult {
	target := d.MaybeBlock(s.index)
	if target == nil {
		return transform.Fail("no block at index")
	}
	return transform.OK(d.ReplaceBlock(s.index, target.WithText(s.text)))
}

func (s replaceText) Invert(d *model.Document) transform.Step {
	return replaceText{index: s.index, text: d.Block(s.index).Text}
}

func TestRenderHTMLExceptions(t *testing.T) {
	e, set := newRestrictedEditor(doc(p("hello world")))
	e.SetSelection(builder.Range(0, 6, 0, 11))
	assert.True(t, e.Execute(Exception))

	html, err := RenderHTML(e.Doc(), set)
	assert.NoError(t, err)
	assert.Equal(t,
		`<p>hello <span class="restricted-editing-exception">world</span></p>`,
		html)
}
