// Package assembly implements the AssemblyEngine: the breadth-first,
// iteration-level exploration that grows a partially assembled graph by
// attaching fragments in every admissible way, pruning by subgraph-
// multiset containment and valence, under optional time and frontier-size
// budgets.
//
// Grounded on original_source/src/assembly/{run,state}.rs.
// coding=utf-8
// @Project : moasm
// @File    : state.go
package assembly

import (
	"github.com/cx-luo/moasm/internal/molgraph"
	"github.com/cx-luo/moasm/internal/subgraph"
)

// State is a partially assembled graph together with its descriptor and a
// precomputed hash. Once created a State is never mutated; it is only ever
// moved between the active frontier and the visited set.
type State struct {
	G *molgraph.Graph
	D *subgraph.Descriptor
	H uint64
}

// NewState builds the descriptor for g and precomputes the combined hash
// used to bucket states in the active/visited sets.
func NewState(g *molgraph.Graph) *State {
	d := subgraph.Build(g)
	return &State{G: g, D: d, H: g.Hash() ^ d.Hash()}
}

// Equal reports whether two states carry pairwise-equal graphs and
// descriptors.
func (s *State) Equal(other *State) bool {
	if other == nil {
		return false
	}
	return s.G.Equal(other.G) && s.D.Equal(other.D)
}

// IsSuccessful reports whether s's descriptor matches the target
// descriptor exactly — the finalization predicate in §4.6.
func (s *State) IsSuccessful(target *subgraph.Descriptor) bool {
	return s.D.Equal(target)
}
