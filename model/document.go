package model

import (
	"fmt"
	"strings"
)

// A Document is a flat ordered sequence of sibling blocks.
//
// Like blocks, documents are persistent data structures, and you should not
// mutate them or their content. Rather, you create new instances whenever
// needed. The API tries to make this easy.
type Document struct {
	Blocks []*Block
}

// NewDocument builds a document from the given blocks.
func NewDocument(blocks ...*Block) *Document {
	return &Document{Blocks: blocks}
}

// ChildCount returns the number of blocks in this document.
func (d *Document) ChildCount() int {
	return len(d.Blocks)
}

// Block returns the block at the given index. Panics when the index is out
// of range.
func (d *Document) Block(index int) *Block {
	if index < 0 || index >= len(d.Blocks) {
		panic(fmt.Errorf("index %d out of range for %v", index, d))
	}
	return d.Blocks[index]
}

// MaybeBlock returns the block at the given index, or nil when the index is
// out of range.
func (d *Document) MaybeBlock(index int) *Block {
	if index < 0 || index >= len(d.Blocks) {
		return nil
	}
	return d.Blocks[index]
}

// ReplaceBlock returns a new document with the block at the given index
// replaced. The receiver is returned unchanged when the replacement is equal
// to the current block.
func (d *Document) ReplaceBlock(index int, block *Block) *Document {
	if d.Block(index).Eq(block) {
		return d
	}
	blocks := make([]*Block, len(d.Blocks))
	copy(blocks, d.Blocks)
	blocks[index] = block
	return &Document{Blocks: blocks}
}

// InsertBlock returns a new document with the block inserted before the
// given index. Index may equal ChildCount to append.
func (d *Document) InsertBlock(index int, block *Block) *Document {
	if index < 0 || index > len(d.Blocks) {
		panic(fmt.Errorf("insert index %d out of range for %v", index, d))
	}
	blocks := make([]*Block, 0, len(d.Blocks)+1)
	blocks = append(blocks, d.Blocks[:index]...)
	blocks = append(blocks, block)
	blocks = append(blocks, d.Blocks[index:]...)
	return &Document{Blocks: blocks}
}

// RemoveBlock returns a new document without the block at the given index.
func (d *Document) RemoveBlock(index int) *Document {
	d.Block(index) // range check
	blocks := make([]*Block, 0, len(d.Blocks)-1)
	blocks = append(blocks, d.Blocks[:index]...)
	blocks = append(blocks, d.Blocks[index+1:]...)
	return &Document{Blocks: blocks}
}

// Eq tests whether two documents have equal content.
func (d *Document) Eq(other *Document) bool {
	if d == other {
		return true
	}
	if len(d.Blocks) != len(other.Blocks) {
		return false
	}
	for i, b := range d.Blocks {
		if !b.Eq(other.Blocks[i]) {
			return false
		}
	}
	return true
}

// Return a string representation of this document for debugging purposes.
func (d *Document) String() string {
	parts := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		parts[i] = b.String()
	}
	return "doc(" + strings.Join(parts, ", ") + ")"
}
