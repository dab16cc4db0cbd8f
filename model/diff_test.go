package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/cozy/listedit-go/model"
)

func TestFindDiffStart(t *testing.T) {
	// returns nil for documents with the same content
	a := NewDocument(para("a"), para("b"))
	assert.Nil(t, FindDiffStart(a, NewDocument(para("a"), para("b"))))

	// notices a changed block
	start := FindDiffStart(a, NewDocument(para("a"), para("x")))
	if assert.NotNil(t, start) {
		assert.Equal(t, 1, *start)
	}

	// notices when one document is longer
	start = FindDiffStart(a, NewDocument(para("a"), para("b"), para("c")))
	if assert.NotNil(t, start) {
		assert.Equal(t, 2, *start)
	}
}

func TestChangedBlocks(t *testing.T) {
	a := NewDocument(para("a"), para("b"), para("c"))

	// nil for equal documents
	assert.Nil(t, ChangedBlocks(a, NewDocument(para("a"), para("b"), para("c"))))

	// a single changed block in the middle
	assert.Equal(t, []int{1},
		ChangedBlocks(a, NewDocument(para("a"), para("x"), para("c"))))

	// an inserted block is reported at its new index
	assert.Equal(t, []int{1},
		ChangedBlocks(a, NewDocument(para("a"), para("x"), para("b"), para("c"))))

	// removal at the end reports no surviving changed blocks
	assert.Empty(t, ChangedBlocks(a, NewDocument(para("a"), para("b"))))
}
