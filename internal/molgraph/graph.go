// Package molgraph implements the labelled molecular graph at the heart of
// the assembler: an atoms vector, a symmetric bond-order matrix and a
// symmetric frozen-edge mask, plus isomorphism-aware equality and hashing.
//
// Grounded on original_source/src/graph.rs (with_size, neighbors, subgraph,
// clone_with_extra, is_isomorphic) and original_source/src/atoms.rs, cross
// referenced against cx-luo-go-chem's pure-Go src/molecule.go for the
// clone-then-mutate lifecycle convention (a Graph is never mutated after it
// leaves the applier; every transformation returns a new value).
// coding=utf-8
// @Project : moasm
// @File    : graph.go
package molgraph

import (
	"fmt"

	"github.com/cx-luo/moasm/internal/atom"
	"github.com/cx-luo/moasm/internal/isomorphism"
	"github.com/cx-luo/moasm/internal/matrix"
)

// Graph is a molecular graph: n atoms, a symmetric bond-order matrix with
// values in {0,1,2,3}, and a symmetric frozen-edge bit mask. Once
// constructed a Graph is treated as an immutable value by every package
// above this one; the attacher/applier clone before mutating.
type Graph struct {
	n      int
	atoms  []atom.Code
	bonds  *matrix.Dense
	frozen *matrix.Dense
}

// NewWithSize creates a graph of n atoms, all with code 0, no bonds and no
// frozen edges — the starting point for parsers and tests that fill in
// atoms and bonds afterward.
func NewWithSize(n int) *Graph {
	return &Graph{
		n:      n,
		atoms:  make([]atom.Code, n),
		bonds:  matrix.NewDense(n),
		frozen: matrix.NewDense(n),
	}
}

// New builds a graph from an explicit atom vector and bond matrix, with a
// freshly zeroed frozen mask, validating the data-model invariants from
// §3 and panicking on violation (fail fast per the error-handling design:
// the core never swallows a structurally invalid graph).
func New(atoms []atom.Code, bonds *matrix.Dense) *Graph {
	n := len(atoms)
	if bonds.Size() != n {
		panic(fmt.Sprintf("molgraph: bond matrix size %d does not match %d atoms", bonds.Size(), n))
	}
	g := &Graph{
		n:      n,
		atoms:  append([]atom.Code(nil), atoms...),
		bonds:  bonds.Clone(),
		frozen: matrix.NewDense(n),
	}
	g.validate()
	return g
}

// validate checks the bond-matrix invariants, panicking on violation.
func (g *Graph) validate() {
	for i := 0; i < g.n; i++ {
		if g.bonds.Get(i, i) != 0 {
			panic(fmt.Sprintf("molgraph: self-bond at node %d", i))
		}
		total := 0
		for j := 0; j < g.n; j++ {
			if g.bonds.Get(i, j) != g.bonds.Get(j, i) {
				panic(fmt.Sprintf("molgraph: asymmetric bond (%d,%d)", i, j))
			}
			total += int(g.bonds.Get(i, j))
		}
		if total > g.atoms[i].MaxBonds() {
			panic(fmt.Sprintf("molgraph: node %d carries %d bonds, exceeds max_bonds %d", i, total, g.atoms[i].MaxBonds()))
		}
	}
}

// N returns the number of atoms.
func (g *Graph) N() int {
	return g.n
}

// AtomAt returns the atom code of node i.
func (g *Graph) AtomAt(i int) atom.Code {
	return g.atoms[i]
}

// SetAtom sets the atom code of node i. Used only while a graph is still
// under construction (parsers, the applier's new-node path).
func (g *Graph) SetAtom(i int, code atom.Code) {
	g.atoms[i] = code
}

// BondOrder returns the bond order between i and j, in {0,1,2,3}.
func (g *Graph) BondOrder(i, j int) int8 {
	return g.bonds.Get(i, j)
}

// SetBond sets the bond order symmetrically between i and j. Used only
// while a graph is still under construction.
func (g *Graph) SetBond(i, j int, order int8) {
	g.bonds.SetSymmetric(i, j, order)
}

// IsFrozen reports whether (i,j) is sealed against future edit.
func (g *Graph) IsFrozen(i, j int) bool {
	return g.frozen.Get(i, j) != 0
}

// IsEdgePossible reports whether (i,j) may still be added or modified.
func (g *Graph) IsEdgePossible(i, j int) bool {
	return !g.IsFrozen(i, j)
}

// SetEdgeImpossible seals (i,j) against future edit.
func (g *Graph) SetEdgeImpossible(i, j int) {
	g.frozen.SetSymmetric(i, j, 1)
}

// Neighbors returns the node indices j with bonds[i][j] > 0, in ascending
// order.
func (g *Graph) Neighbors(i int) []int {
	var out []int
	for j := 0; j < g.n; j++ {
		if j != i && g.bonds.Get(i, j) > 0 {
			out = append(out, j)
		}
	}
	return out
}

// Degree returns the sum of bond orders incident to i.
func (g *Graph) Degree(i int) int {
	total := 0
	for j := 0; j < g.n; j++ {
		total += int(g.bonds.Get(i, j))
	}
	return total
}

// NumberOfEdges returns the sum of upper-triangle bond orders.
func (g *Graph) NumberOfEdges() int {
	total := 0
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			total += int(g.bonds.Get(i, j))
		}
	}
	return total
}

// IsCircular reports whether every vertex has degree exactly 2 — the
// defining property of a ring subgraph.
func (g *Graph) IsCircular() bool {
	if g.n == 0 {
		return false
	}
	for i := 0; i < g.n; i++ {
		count := 0
		for j := 0; j < g.n; j++ {
			if j != i && g.bonds.Get(i, j) > 0 {
				count++
			}
		}
		if count != 2 {
			return false
		}
	}
	return true
}

// FirstUnsaturatedVertex returns the smallest index i whose current bond
// total is below max_bonds(atoms[i]) — the anchor the attacher pins every
// growth step to. ok is false if every vertex is saturated.
func (g *Graph) FirstUnsaturatedVertex() (i int, ok bool) {
	for i := 0; i < g.n; i++ {
		if g.Degree(i) < g.atoms[i].MaxBonds() {
			return i, true
		}
	}
	return 0, false
}

// FreezeNonexistingEdges is the seed-preparation routine: it marks frozen
// every pair with no bond, and every pair touching a valence-1 atom
// (max_bonds == 1, e.g. hydrogen), since such atoms can never gain a
// second neighbour.
func (g *Graph) FreezeNonexistingEdges() {
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.bonds.Get(i, j) == 0 {
				g.SetEdgeImpossible(i, j)
			}
		}
	}
	for i := 0; i < g.n; i++ {
		if g.atoms[i].MaxBonds() == 1 {
			for j := 0; j < g.n; j++ {
				if j != i {
					g.SetEdgeImpossible(i, j)
				}
			}
		}
	}
}

// Clone returns an independent deep copy.
func (g *Graph) Clone() *Graph {
	return &Graph{
		n:      g.n,
		atoms:  append([]atom.Code(nil), g.atoms...),
		bonds:  g.bonds.Clone(),
		frozen: g.frozen.Clone(),
	}
}

// CloneWithExtra returns a copy of g grown to n+extra atoms; the new atoms
// start with code 0 and no bonds or frozen edges.
func (g *Graph) CloneWithExtra(extra int) *Graph {
	return &Graph{
		n:      g.n + extra,
		atoms:  append(append([]atom.Code(nil), g.atoms...), make([]atom.Code, extra)...),
		bonds:  g.bonds.Grow(extra),
		frozen: g.frozen.Grow(extra),
	}
}

// Subgraph returns the induced subgraph on the given node indices, in the
// order given. The caller asserts the result is connected; this method
// does not check that.
func (g *Graph) Subgraph(nodes []int) *Graph {
	out := &Graph{
		n:      len(nodes),
		atoms:  make([]atom.Code, len(nodes)),
		bonds:  g.bonds.Submatrix(nodes),
		frozen: matrix.NewDense(len(nodes)),
	}
	for k, idx := range nodes {
		out.atoms[k] = g.atoms[idx]
	}
	return out
}

// edgeSum is the fast-filter invariant: total bond order across the whole
// matrix (twice NumberOfEdges, but cheaper to keep as its own primitive
// since the isomorphism package takes it directly).
func (g *Graph) edgeSum() int {
	total := 0
	for i := 0; i < g.n; i++ {
		total += g.Degree(i)
	}
	return total
}

// codes returns the atom vector in the representation the isomorphism
// package operates over.
func (g *Graph) codes() isomorphism.Atoms {
	out := make(isomorphism.Atoms, g.n)
	for i, a := range g.atoms {
		out[i] = int32(a)
	}
	return out
}

// Equal reports whether g and other are isomorphic: a bijection exists
// matching atom codes and bond orders. This is the equality spec.md §3
// requires — two Graph values with different node orderings but the same
// labelled structure are equal.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}
	if !isomorphism.FastFilter(g.n, other.n, g.edgeSum(), other.edgeSum(), g.Hash(), other.Hash()) {
		return false
	}
	return isomorphism.Verify(g.codes(), other.codes(), g.bonds, other.bonds)
}
