// Hashing for Graph: an isomorphism-invariant digest built from a sorted
// atom-label histogram and a sorted multiset of (min-label, max-label,
// order) edge triples, combined with FNV-1a64 mixing in the style of
// cx-luo-go-chem/molecule/molecule_hash.go's iterative neighborhood hash
// (same fnv1a64Init/fnv1a64Add building blocks, applied here to a
// structural digest rather than a WL refinement since the assembler only
// needs a cheap order-independent invariant, not canonical labelling).
// coding=utf-8
// @Project : moasm
// @File    : hash.go
package molgraph

import "sort"

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

func fnv1a64Init() uint64 {
	return fnvOffset64
}

func fnv1a64Add(h uint64, b byte) uint64 {
	h ^= uint64(b)
	h *= fnvPrime64
	return h
}

func fnv1a64Uint(h uint64, v uint64) uint64 {
	for shift := 0; shift < 64; shift += 8 {
		h = fnv1a64Add(h, byte(v>>uint(shift)))
	}
	return h
}

type edgeTriple struct {
	lo, hi int32
	order  int8
}

// Hash computes the isomorphism-invariant digest required by spec.md §3.
func (g *Graph) Hash() uint64 {
	labels := make([]int32, g.n)
	for i, a := range g.atoms {
		labels[i] = int32(a)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	var edges []edgeTriple
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if order := g.bonds.Get(i, j); order != 0 {
				lo, hi := g.atoms[i], g.atoms[j]
				loc, hic := int32(lo), int32(hi)
				if loc > hic {
					loc, hic = hic, loc
				}
				edges = append(edges, edgeTriple{lo: loc, hi: hic, order: order})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].lo != edges[j].lo {
			return edges[i].lo < edges[j].lo
		}
		if edges[i].hi != edges[j].hi {
			return edges[i].hi < edges[j].hi
		}
		return edges[i].order < edges[j].order
	})

	h := fnv1a64Init()
	h = fnv1a64Uint(h, uint64(len(labels)))
	for _, l := range labels {
		h = fnv1a64Uint(h, uint64(uint32(l)))
	}
	h = fnv1a64Uint(h, uint64(len(edges)))
	for _, e := range edges {
		h = fnv1a64Uint(h, uint64(uint32(e.lo)))
		h = fnv1a64Uint(h, uint64(uint32(e.hi)))
		h = fnv1a64Add(h, byte(e.order))
	}
	return h
}
