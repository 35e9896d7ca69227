// AttachmentApplier: turns an enumerated Attachment into the successor
// graph, updating the frozen-edge mask. Grounded on
// original_source/src/attachment/perform.rs.
// coding=utf-8
// @Project : moasm
// @File    : applier.go
package attach

import "github.com/cx-luo/moasm/internal/molgraph"

// Apply produces the successor graph for attaching fragment f onto host h
// via a. It returns (nil, false) if any admissibility check fires: a
// frozen pair would need to change, or a vertex would exceed its max_bonds.
func Apply(h, f *molgraph.Graph, a Attachment) (*molgraph.Graph, bool) {
	if a.NewNode < 0 {
		return applyEdgeOnly(h, f, a.Mapping)
	}
	return applyNewNode(h, f, a.Mapping, a.NewNode)
}

func applyEdgeOnly(h, f *molgraph.Graph, mapping map[int]int) (*molgraph.Graph, bool) {
	out := h.Clone()

	for i := 0; i < f.N(); i++ {
		for j := i + 1; j < f.N(); j++ {
			order := f.BondOrder(i, j)
			if order == 0 {
				continue
			}
			a, b := mapping[i], mapping[j]
			if out.BondOrder(a, b) == 0 {
				if out.IsFrozen(a, b) {
					return nil, false
				}
				out.SetBond(a, b, order)
			}
			// The fragment's full adjacency around this pair is now
			// committed; later fragments may not re-edit it.
			out.SetEdgeImpossible(a, b)
		}
	}

	if !withinValence(out) {
		return nil, false
	}
	return out, true
}

func applyNewNode(h, f *molgraph.Graph, mapping map[int]int, newF int) (*molgraph.Graph, bool) {
	out := h.CloneWithExtra(1)
	newH := h.N()
	out.SetAtom(newH, f.AtomAt(newF))

	for fi, hi := range mapping {
		order := f.BondOrder(fi, newF)
		if order > 0 {
			out.SetBond(hi, newH, order)
		} else {
			out.SetEdgeImpossible(hi, newH)
		}
	}

	freezeValenceOneNeighbours(out)

	if !withinValence(out) {
		return nil, false
	}
	return out, true
}

// freezeValenceOneNeighbours freezes every pair touching an atom whose
// max_bonds is 1 (hydrogen and similar valence-1 atoms), since such atoms
// can never gain a second neighbour regardless of which fragment created
// them.
func freezeValenceOneNeighbours(g *molgraph.Graph) {
	for i := 0; i < g.N(); i++ {
		if g.AtomAt(i).MaxBonds() == 1 {
			for j := 0; j < g.N(); j++ {
				if j != i {
					g.SetEdgeImpossible(i, j)
				}
			}
		}
	}
}

func withinValence(g *molgraph.Graph) bool {
	for i := 0; i < g.N(); i++ {
		if g.Degree(i) > g.AtomAt(i).MaxBonds() {
			return false
		}
	}
	return true
}
