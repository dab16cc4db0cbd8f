package model

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new list items and markers. It is
// passed as an explicit dependency rather than called as ambient global
// state, so tests can substitute a deterministic sequence.
type IDGenerator interface {
	Next() string
}

// UUIDGenerator is the production generator, backed by random UUIDs.
type UUIDGenerator struct{}

// Next is a method of the IDGenerator interface.
func (UUIDGenerator) Next() string {
	return uuid.NewString()
}

// SequenceGenerator yields prefix0, prefix1, prefix2, ... in order.
// Deterministic, for tests.
type SequenceGenerator struct {
	Prefix string
	n      int
}

// Next is a method of the IDGenerator interface.
func (g *SequenceGenerator) Next() string {
	id := g.Prefix + strconv.Itoa(g.n)
	g.n++
	return id
}
