package model

// FindDiffStart returns the index of the first block where the two documents
// differ, or nil when they have the same content.
func FindDiffStart(a, b *Document) *int {
	for i := 0; ; i++ {
		if i == a.ChildCount() || i == b.ChildCount() {
			if a.ChildCount() == b.ChildCount() {
				return nil
			}
			return &i
		}
		if !a.Block(i).Eq(b.Block(i)) {
			return &i
		}
	}
}

// diffEnd is the result of findDiffEnd, with the index just after the last
// differing block in both documents.
type diffEnd struct {
	A int
	B int
}

// findDiffEnd returns the exclusive end of the differing region, scanning
// from the tails of both documents.
func findDiffEnd(a, b *Document) *diffEnd {
	ia := a.ChildCount()
	ib := b.ChildCount()
	for {
		if ia == 0 || ib == 0 {
			if ia == ib {
				return nil
			}
			return &diffEnd{A: ia, B: ib}
		}
		if !a.Block(ia - 1).Eq(b.Block(ib - 1)) {
			return &diffEnd{A: ia, B: ib}
		}
		ia--
		ib--
	}
}

// ChangedBlocks returns the indexes, in document b, of the blocks in the
// changed region between the two documents. It returns nil when the
// documents have equal content.
func ChangedBlocks(a, b *Document) []int {
	start := FindDiffStart(a, b)
	if start == nil {
		return nil
	}
	end := findDiffEnd(a, b)
	last := end.B
	// The head and tail scans can overlap when blocks were only removed.
	if last < *start {
		last = *start
	}
	changed := make([]int, 0, last-*start)
	for i := *start; i < last; i++ {
		changed = append(changed, i)
	}
	return changed
}
