// Package attach implements the Attacher and AttachmentApplier: enumerating
// every admissible way to glue a fragment F onto a host graph H, and
// applying the chosen mapping to produce the successor graph.
//
// Grounded on original_source/src/attachment/interface.rs (the BFS
// mapping-growth search, branching on whether F has zero or one unmapped
// node) and original_source/src/attachment/perform.rs (edge-only vs
// new-node application, frozen-mask bookkeeping).
// coding=utf-8
// @Project : moasm
// @File    : attacher.go
package attach

import "github.com/cx-luo/moasm/internal/molgraph"

// Attachment is one admissible way to glue a fragment onto a host: a
// partial injective mapping from fragment nodes to host nodes, plus the
// single fragment node left unmapped when growing a new atom (-1 for
// edge-only attachments).
type Attachment struct {
	Mapping map[int]int
	NewNode int
}

// Enumerate returns every admissible Attachment of fragment f onto host h,
// pinned to the given anchor vertex (h's first unsaturated vertex) per the
// anchor rule in §4.4: edge-only attachments must add an edge touching the
// anchor; new-node attachments must route at least one of the new node's
// fragment-edges through the anchor.
func Enumerate(h, f *molgraph.Graph, anchor int) []Attachment {
	var out []Attachment

	full := allTrue(f.N())
	for _, mapping := range searchMappings(h, f, full) {
		if edgeOnlyTouchesAnchor(h, f, mapping, anchor) {
			out = append(out, Attachment{Mapping: mapping, NewNode: -1})
		}
	}

	for v := 0; v < f.N(); v++ {
		include := allTrue(f.N())
		include[v] = false
		for _, mapping := range searchMappings(h, f, include) {
			if newNodeTouchesAnchor(f, mapping, v, anchor) {
				out = append(out, Attachment{Mapping: mapping, NewNode: v})
			}
		}
	}

	return out
}

func allTrue(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}

func edgeOnlyTouchesAnchor(h, f *molgraph.Graph, mapping map[int]int, anchor int) bool {
	for i := 0; i < f.N(); i++ {
		for j := i + 1; j < f.N(); j++ {
			if f.BondOrder(i, j) == 0 {
				continue
			}
			a, b := mapping[i], mapping[j]
			if h.BondOrder(a, b) == 0 && (a == anchor || b == anchor) {
				return true
			}
		}
	}
	return false
}

func newNodeTouchesAnchor(f *molgraph.Graph, mapping map[int]int, v, anchor int) bool {
	for _, nb := range f.Neighbors(v) {
		if mapping[nb] == anchor {
			return true
		}
	}
	return false
}

// searchMappings enumerates every injective map from the fragment nodes
// marked in include to host nodes, agreeing on atom code and compatible
// with existing host bonds: an F-edge must either match an identical
// existing host bond order, or land on a still-placeable (non-frozen,
// currently absent) host pair.
func searchMappings(h, f *molgraph.Graph, include []bool) []map[int]int {
	var fNodes []int
	for i, inc := range include {
		if inc {
			fNodes = append(fNodes, i)
		}
	}

	var out []map[int]int
	mapping := make(map[int]int, len(fNodes))
	used := make(map[int]bool, len(fNodes))

	var recurse func(pos int)
	recurse = func(pos int) {
		if pos == len(fNodes) {
			out = append(out, cloneMapping(mapping))
			return
		}
		fn := fNodes[pos]
		for hn := 0; hn < h.N(); hn++ {
			if used[hn] {
				continue
			}
			if f.AtomAt(fn) != h.AtomAt(hn) {
				continue
			}
			if !compatibleWithAssigned(h, f, mapping, fn, hn) {
				continue
			}
			mapping[fn] = hn
			used[hn] = true
			recurse(pos + 1)
			delete(mapping, fn)
			delete(used, hn)
		}
	}
	recurse(0)
	return out
}

func compatibleWithAssigned(h, f *molgraph.Graph, mapping map[int]int, fn, hn int) bool {
	for otherF, otherH := range mapping {
		order := f.BondOrder(fn, otherF)
		if order == 0 {
			continue
		}
		existing := h.BondOrder(hn, otherH)
		if existing == order {
			continue
		}
		if existing == 0 && h.IsEdgePossible(hn, otherH) {
			continue
		}
		return false
	}
	return true
}

func cloneMapping(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
