package model

// Position points at a character offset inside one block of a document. An
// offset of zero is the start of the block; an offset equal to the text
// length is its end.
type Position struct {
	Block  int
	Offset int
}

// Before reports whether p comes before q in document order.
func (p Position) Before(q Position) bool {
	if p.Block != q.Block {
		return p.Block < q.Block
	}
	return p.Offset < q.Offset
}

// Selection is a pair of positions: the anchor, the side that does not move
// when the selection is extended, and the head, the side that does.
type Selection struct {
	Anchor Position
	Head   Position
}

// Collapse builds a collapsed selection at the given position.
func Collapse(p Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// Collapsed reports whether the anchor and the head coincide.
func (s Selection) Collapsed() bool {
	return s.Anchor == s.Head
}

// From returns whichever of anchor and head comes first in document order.
func (s Selection) From() Position {
	if s.Head.Before(s.Anchor) {
		return s.Head
	}
	return s.Anchor
}

// To returns whichever of anchor and head comes last in document order.
func (s Selection) To() Position {
	if s.Head.Before(s.Anchor) {
		return s.Anchor
	}
	return s.Head
}

// AtBlockStart reports whether the selection is collapsed at the absolute
// start of its block.
func (s Selection) AtBlockStart() bool {
	return s.Collapsed() && s.Anchor.Offset == 0
}

// Valid reports whether the selection points inside the given document.
func (s Selection) Valid(doc *Document) bool {
	return validPosition(doc, s.Anchor) && validPosition(doc, s.Head)
}

func validPosition(doc *Document, p Position) bool {
	b := doc.MaybeBlock(p.Block)
	return b != nil && p.Offset >= 0 && p.Offset <= len(b.Text)
}
