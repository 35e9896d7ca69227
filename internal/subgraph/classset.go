// Package subgraph implements the SubgraphEnumerator and SubgraphDescriptor
// components: enumerating connected induced sub-node-sets of a graph and
// quotienting them by isomorphism into the "rings+fragments" descriptor.
//
// Grounded on original_source/src/subgraphs/{iteration,base_case,count}.rs
// for enumeration and on variants/with_rings.rs for the production
// descriptor shape (atoms, frags4 with the ×4 ring-boost, rings5, rings6).
// coding=utf-8
// @Project : moasm
// @File    : classset.go
package subgraph

import "github.com/cx-luo/moasm/internal/molgraph"

// Entry is one isomorphism class in a ClassSet: a representative graph and
// how many times it was observed.
type Entry struct {
	Graph *molgraph.Graph
	Count int
}

// ClassSet is a multiset of graphs quotiented by isomorphism — the shared
// representation behind the atoms, frags4, rings5 and rings6 fields of
// Descriptor. Lookup buckets candidates by hash first, then confirms with
// the exact Equal check, mirroring the bucket-then-verify pattern package
// isomorphism uses internally.
type ClassSet struct {
	buckets map[uint64][]*Entry
	size    int
}

// NewClassSet returns an empty ClassSet.
func NewClassSet() *ClassSet {
	return &ClassSet{buckets: make(map[uint64][]*Entry)}
}

// Add records one more observation of g, merging into an existing
// isomorphism class if one matches.
func (cs *ClassSet) Add(g *molgraph.Graph) {
	cs.AddN(g, 1)
}

// AddN records n more observations of g at once — used when applying the
// ring-boost multiplier.
func (cs *ClassSet) AddN(g *molgraph.Graph, n int) {
	h := g.Hash()
	for _, e := range cs.buckets[h] {
		if e.Graph.Equal(g) {
			e.Count += n
			cs.size += n
			return
		}
	}
	cs.buckets[h] = append(cs.buckets[h], &Entry{Graph: g, Count: n})
	cs.size += n
}

// AmountOf returns how many times g's isomorphism class was observed.
func (cs *ClassSet) AmountOf(g *molgraph.Graph) int {
	for _, e := range cs.buckets[g.Hash()] {
		if e.Graph.Equal(g) {
			return e.Count
		}
	}
	return 0
}

// Entries returns every isomorphism class with its count, in no
// particular order (the descriptor's subset test and hash sort separately
// where ordering matters).
func (cs *ClassSet) Entries() []*Entry {
	out := make([]*Entry, 0, cs.size)
	for _, bucket := range cs.buckets {
		out = append(out, bucket...)
	}
	return out
}

// IsEmpty reports whether no observations were recorded.
func (cs *ClassSet) IsEmpty() bool {
	return len(cs.buckets) == 0
}

// First returns an arbitrary representative, used by SelectStartingGraph.
func (cs *ClassSet) First() (*molgraph.Graph, bool) {
	for _, bucket := range cs.buckets {
		if len(bucket) > 0 {
			return bucket[0].Graph, true
		}
	}
	return nil, false
}

// IsSubsetOf reports whether every class in cs appears in other with at
// least the same count — the plain (non chain-to-ring-aware) multiset
// subset test used for the atoms, rings5 and rings6 fields.
func (cs *ClassSet) IsSubsetOf(other *ClassSet) bool {
	for _, e := range cs.Entries() {
		if e.Count > other.AmountOf(e.Graph) {
			return false
		}
	}
	return true
}
