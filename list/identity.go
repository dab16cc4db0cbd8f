// Package list implements the list-editing feature: the block-sequence
// walker and identity resolver over sibling blocks, the indent and outdent
// commands, the Enter and Backspace decision logic, and the repair pass that
// restores list invariants after arbitrary edits.
package list

import "github.com/cozy/listedit-go/model"

// IsListBlock reports whether the block carries a list-item identity, that
// is, whether it is part of some list item. A nil block is not a list block.
func IsListBlock(b *model.Block) bool {
	return b != nil && b.List != nil && b.List.ItemID != ""
}

// SameList reports whether two blocks belong to the same list item. It is
// false when either block is nil or lacks an item identity, so a missing
// previous sibling never counts as sharing a list.
func SameList(a, b *model.Block) bool {
	if !IsListBlock(a) || !IsListBlock(b) {
		return false
	}
	return a.List.ItemID == b.List.ItemID
}
