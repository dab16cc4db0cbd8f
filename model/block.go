package model

import (
	"errors"
	"fmt"
)

// ListType tells whether a list item belongs to a bulleted or a numbered
// list.
type ListType string

// The two supported list types.
const (
	Bulleted ListType = "bulleted"
	Numbered ListType = "numbered"
)

// Valid reports whether t is one of the supported list types.
func (t ListType) Valid() bool {
	return t == Bulleted || t == Numbered
}

// ListAttrs groups the list attributes carried by a block that is part of a
// list. All blocks sharing an ItemID form one logical list item and must be
// contiguous in sibling order. A block carries either a complete ListAttrs
// value or none at all: there is no such thing as a block with an indent but
// no item identity.
type ListAttrs struct {
	// ItemID is an opaque identifier shared by all blocks belonging to the
	// same list item.
	ItemID string
	// Indent is the nesting depth of the item, starting at zero.
	Indent int
	// Type is the rendering style of the list the item belongs to.
	Type ListType
}

// NewListAttrs validates and builds a ListAttrs value.
func NewListAttrs(itemID string, indent int, typ ListType) (*ListAttrs, error) {
	if itemID == "" {
		return nil, errors.New("list attributes require a non-empty item id")
	}
	if indent < 0 {
		return nil, fmt.Errorf("negative list indent %d", indent)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown list type %q", typ)
	}
	return &ListAttrs{ItemID: itemID, Indent: indent, Type: typ}, nil
}

// MustListAttrs is like NewListAttrs but panics on invalid input. Intended
// for literals known to be valid, such as test fixtures.
func MustListAttrs(itemID string, indent int, typ ListType) *ListAttrs {
	attrs, err := NewListAttrs(itemID, indent, typ)
	if err != nil {
		panic(err)
	}
	return attrs
}

// Eq compares two attribute values, either of which may be nil.
func (a *ListAttrs) Eq(other *ListAttrs) bool {
	if a == nil || other == nil {
		return a == other
	}
	return *a == *other
}

// WithIndent returns a copy of the attributes with the given indent.
func (a *ListAttrs) WithIndent(indent int) *ListAttrs {
	cpy := *a
	cpy.Indent = indent
	return &cpy
}

// WithItemID returns a copy of the attributes with the given item identity.
func (a *ListAttrs) WithItemID(itemID string) *ListAttrs {
	cpy := *a
	cpy.ItemID = itemID
	return &cpy
}

// Block is a node in the ordered sibling sequence that makes up a document.
//
// Blocks are persistent data structures. Instead of changing them, you create
// new ones with the content you want. Old ones keep pointing at the old
// document shape, which makes sharing structure between document versions
// cheap.
//
// Do not directly mutate the fields of a Block.
type Block struct {
	// Text is the textual content of the block.
	Text string
	// List holds the list attributes of the block, or nil when the block is
	// not part of any list.
	List *ListAttrs
}

// NewBlock is the constructor for Block.
func NewBlock(text string, list *ListAttrs) *Block {
	return &Block{Text: text, List: list}
}

// Empty reports whether the block has no text content.
func (b *Block) Empty() bool {
	return b.Text == ""
}

// WithText returns a copy of the block with the given text, or the block
// itself when the text is unchanged.
func (b *Block) WithText(text string) *Block {
	if text == b.Text {
		return b
	}
	return NewBlock(text, b.List)
}

// WithList returns a copy of the block carrying the given list attributes
// (nil converts the block back to a plain paragraph), or the block itself
// when they are unchanged.
func (b *Block) WithList(list *ListAttrs) *Block {
	if b.List.Eq(list) {
		return b
	}
	return NewBlock(b.Text, list)
}

// Eq tests whether two blocks represent the same piece of document.
func (b *Block) Eq(other *Block) bool {
	if b == other {
		return true
	}
	return b.Text == other.Text && b.List.Eq(other.List)
}

// Return a string representation of this block for debugging purposes.
func (b *Block) String() string {
	if b.List == nil {
		return fmt.Sprintf("paragraph(%q)", b.Text)
	}
	return fmt.Sprintf("%s(id=%s, indent=%d, %q)",
		b.List.Type, b.List.ItemID, b.List.Indent, b.Text)
}
