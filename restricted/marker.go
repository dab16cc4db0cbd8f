// Package restricted implements restricted editing mode: markers that flag
// spans of text as editable exceptions within an otherwise locked document,
// a command toggling an exception over the selection, and the predicate the
// host consults before letting an edit through.
package restricted

import (
	"fmt"
	"sort"

	"github.com/cozy/listedit-go/model"
)

// Marker flags the span [From, To) of the block at index Block as an
// editable exception.
type Marker struct {
	ID    string
	Block int
	From  int
	To    int
}

// Contains reports whether the position lies inside the marker's span,
// boundaries included, so typing at the very edge of an exception stays
// allowed.
func (m *Marker) Contains(p model.Position) bool {
	return p.Block == m.Block && p.Offset >= m.From && p.Offset <= m.To
}

// MarkerSet owns the exception markers of a document. Markers are plugin
// state, not block attributes: they live alongside the document and are
// clamped against it after every change.
type MarkerSet struct {
	markers []*Marker
}

// NewMarkerSet creates an empty marker set.
func NewMarkerSet() *MarkerSet {
	return &MarkerSet{}
}

// Add inserts a marker. Markers inside one block must not overlap; an
// overlapping or inverted span is rejected.
func (s *MarkerSet) Add(m *Marker) error {
	if m.From < 0 || m.To < m.From {
		return fmt.Errorf("invalid marker span [%d, %d)", m.From, m.To)
	}
	for _, other := range s.markers {
		if other.Block == m.Block && m.From < other.To && other.From < m.To {
			return fmt.Errorf("marker %s overlaps %s", m.ID, other.ID)
		}
	}
	s.markers = append(s.markers, m)
	return nil
}

// Remove deletes the marker with the given id, reporting whether it was
// present.
func (s *MarkerSet) Remove(id string) bool {
	for i, m := range s.markers {
		if m.ID == id {
			s.markers = append(s.markers[:i], s.markers[i+1:]...)
			return true
		}
	}
	return false
}

// At returns the marker whose span contains the position, or nil.
func (s *MarkerSet) At(p model.Position) *Marker {
	for _, m := range s.markers {
		if m.Contains(p) {
			return m
		}
	}
	return nil
}

// In returns the markers of the given block, ordered by span start.
func (s *MarkerSet) In(block int) []*Marker {
	var result []*Marker
	for _, m := range s.markers {
		if m.Block == block {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].From < result[j].From })
	return result
}

// AllowsEditAt reports whether an edit at the position is allowed in
// restricted mode, that is, whether it falls inside some exception span.
func (s *MarkerSet) AllowsEditAt(p model.Position) bool {
	return s.At(p) != nil
}

// AllowsEdit reports whether the whole selection lies inside a single
// exception span.
func (s *MarkerSet) AllowsEdit(sel model.Selection) bool {
	m := s.At(sel.From())
	return m != nil && m.Contains(sel.To())
}

// Clamp drops markers whose block no longer exists and trims spans that
// stick out past their block's text. Zero-width markers survive: an
// exception emptied by editing is still an exception.
func (s *MarkerSet) Clamp(doc *model.Document) {
	kept := s.markers[:0]
	for _, m := range s.markers {
		b := doc.MaybeBlock(m.Block)
		if b == nil {
			continue
		}
		if m.To > len(b.Text) {
			m.To = len(b.Text)
		}
		if m.From > m.To {
			m.From = m.To
		}
		kept = append(kept, m)
	}
	s.markers = kept
}
