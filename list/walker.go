package list

import (
	"fmt"

	"github.com/cozy/listedit-go/model"
)

// ItemRange returns the inclusive index range [start, end] of the contiguous
// run of sibling blocks forming the list item that the block at index
// belongs to. The scan is shallow: it walks immediate siblings only, one
// backward pass and one forward pass, each stopping at the first block whose
// item identity differs.
//
// Calling ItemRange on a block that is not a list block is a contract
// violation and panics; callers must check IsListBlock first.
func ItemRange(doc *model.Document, index int) (start, end int) {
	b := doc.Block(index)
	if !IsListBlock(b) {
		panic(fmt.Errorf("block %d is not a list block: %v", index, b))
	}
	start = index
	for start > 0 && SameList(doc.Block(start-1), b) {
		start--
	}
	end = index
	for end < doc.ChildCount()-1 && SameList(doc.Block(end+1), b) {
		end++
	}
	return start, end
}

// ItemBlocks returns all sibling blocks belonging to the same list item as
// the block containing the given position, in document order, including that
// block itself.
func ItemBlocks(doc *model.Document, pos model.Position) []*model.Block {
	start, end := ItemRange(doc, pos.Block)
	blocks := make([]*model.Block, 0, end-start+1)
	for i := start; i <= end; i++ {
		blocks = append(blocks, doc.Block(i))
	}
	return blocks
}
