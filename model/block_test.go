package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/cozy/listedit-go/model"
)

func TestNewListAttrs(t *testing.T) {
	// accepts a complete combination
	attrs, err := NewListAttrs("a1", 2, Bulleted)
	if assert.NoError(t, err) {
		assert.Equal(t, "a1", attrs.ItemID)
		assert.Equal(t, 2, attrs.Indent)
		assert.Equal(t, Bulleted, attrs.Type)
	}

	// rejects an empty item id
	_, err = NewListAttrs("", 0, Bulleted)
	assert.Error(t, err)

	// rejects a negative indent
	_, err = NewListAttrs("a1", -1, Numbered)
	assert.Error(t, err)

	// rejects an unknown list type
	_, err = NewListAttrs("a1", 0, ListType("fancy"))
	assert.Error(t, err)
}

func TestListAttrsEq(t *testing.T) {
	a := MustListAttrs("a1", 1, Bulleted)

	// equal values compare equal regardless of pointer identity
	assert.True(t, a.Eq(MustListAttrs("a1", 1, Bulleted)))

	// any differing field breaks equality
	assert.False(t, a.Eq(MustListAttrs("a2", 1, Bulleted)))
	assert.False(t, a.Eq(a.WithIndent(2)))
	assert.False(t, a.Eq(MustListAttrs("a1", 1, Numbered)))

	// nil only equals nil
	assert.False(t, a.Eq(nil))
	var b *ListAttrs
	assert.True(t, b.Eq(nil))
}

func TestBlockWithList(t *testing.T) {
	attrs := MustListAttrs("a1", 0, Bulleted)
	block := NewBlock("hello", attrs)

	// unchanged attributes return the receiver
	assert.Same(t, block, block.WithList(MustListAttrs("a1", 0, Bulleted)))

	// changed attributes copy the block, leaving the original alone
	indented := block.WithList(attrs.WithIndent(1))
	assert.Equal(t, 1, indented.List.Indent)
	assert.Equal(t, 0, block.List.Indent)

	// nil clears list membership
	plain := block.WithList(nil)
	assert.Nil(t, plain.List)
	assert.Equal(t, "hello", plain.Text)
}

func TestBlockWithText(t *testing.T) {
	block := NewBlock("hello", nil)
	assert.Same(t, block, block.WithText("hello"))
	assert.Equal(t, "bye", block.WithText("bye").Text)
	assert.Equal(t, "hello", block.Text)
}

func TestBlockEmpty(t *testing.T) {
	assert.True(t, NewBlock("", nil).Empty())
	assert.False(t, NewBlock("x", nil).Empty())
}

func TestBlockString(t *testing.T) {
	assert.Equal(t, `paragraph("hi")`, NewBlock("hi", nil).String())
	assert.Equal(t, `bulleted(id=a1, indent=1, "hi")`,
		NewBlock("hi", MustListAttrs("a1", 1, Bulleted)).String())
}
