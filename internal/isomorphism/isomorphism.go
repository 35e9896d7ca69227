// Package isomorphism implements the two-layer isomorphism oracle used
// pervasively across the assembler as a hash/equality primitive: a cheap
// fast filter (size, edge count, invariant hash) and an exact backtracking
// verifier over a label-bucketed bijection search.
//
// Grounded on original_source/src/isomorphism/{fast,slow,bitset}.rs: the
// fast filter short-circuits non-isomorphic graphs cheaply, and the slow
// path restricts candidate targets per source node to a bucket of nodes
// sharing its atom code, backtracking with bitsets of undecided source
// nodes and taken target nodes.
// coding=utf-8
// @Project : moasm
// @File    : isomorphism.go
package isomorphism

import "github.com/cx-luo/moasm/internal/matrix"

// Atoms abstracts the label vector an isomorphism check runs over, so this
// package depends only on atom.Code's underlying comparable representation,
// not on package atom itself (avoiding an import merely for a type name).
type Atoms []int32

// FastFilter reports whether g1 and g2 could possibly be isomorphic, purely
// from cheap invariants: equal size, equal total bond-order, equal
// invariant hash. A false result is conclusive (not isomorphic); a true
// result requires the exact verifier to confirm.
func FastFilter(n1, n2 int, edgeSum1, edgeSum2 int, hash1, hash2 uint64) bool {
	return n1 == n2 && edgeSum1 == edgeSum2 && hash1 == hash2
}

// bucket maps an atom label to the sorted list of node indices carrying it.
type bucket map[int32][]int

func buildBucket(atoms Atoms) bucket {
	b := make(bucket, len(atoms))
	for i, a := range atoms {
		b[a] = append(b[a], i)
	}
	return b
}

// bitset is a small fixed-size bit vector used to track undecided source
// nodes and taken target nodes during backtracking, per
// original_source/src/isomorphism/bitset.rs.
type bitset struct {
	words []uint64
	count int
}

func fullBitset(n int) *bitset {
	bs := &bitset{words: make([]uint64, (n+63)/64), count: n}
	for i := 0; i < n; i++ {
		bs.words[i/64] |= 1 << uint(i%64)
	}
	return bs
}

func emptyBitset(n int) *bitset {
	return &bitset{words: make([]uint64, (n+63)/64)}
}

func (b *bitset) isSet(i int) bool {
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

func (b *bitset) set(i int) {
	if !b.isSet(i) {
		b.count++
		b.words[i/64] |= 1 << uint(i%64)
	}
}

func (b *bitset) unset(i int) {
	if b.isSet(i) {
		b.count--
		b.words[i/64] &^= 1 << uint(i%64)
	}
}

func (b *bitset) isEmpty() bool { return b.count == 0 }

// Verify runs the exact backtracking search for a bijection π such that
// atoms1[i] == atoms2[π(i)] for all i and bonds1[i][j] == bonds2[π(i)][π(j)]
// for all i,j. Callers are expected to have already passed FastFilter.
func Verify(atoms1, atoms2 Atoms, bonds1, bonds2 *matrix.Dense) bool {
	n := len(atoms1)
	if n != len(atoms2) {
		return false
	}

	targets := buildBucket(atoms2)
	mapping := make([]int, n)
	undecided := fullBitset(n)
	taken := emptyBitset(n)

	return search(atoms1, atoms2, bonds1, bonds2, targets, undecided, taken, mapping)
}

func search(atoms1, atoms2 Atoms, bonds1, bonds2 *matrix.Dense, targets bucket, undecided, taken *bitset, mapping []int) bool {
	if undecided.isEmpty() {
		return verifyMapping(atoms1, atoms2, bonds1, bonds2, mapping)
	}

	n := len(atoms1)
	current := -1
	for i := 0; i < n; i++ {
		if undecided.isSet(i) {
			current = i
			break
		}
	}

	for _, candidate := range targets[atoms1[current]] {
		if taken.isSet(candidate) {
			continue
		}

		mapping[current] = candidate
		undecided.unset(current)
		taken.set(candidate)

		if search(atoms1, atoms2, bonds1, bonds2, targets, undecided, taken, mapping) {
			return true
		}

		undecided.set(current)
		taken.unset(candidate)
	}

	return false
}

func verifyMapping(atoms1, atoms2 Atoms, bonds1, bonds2 *matrix.Dense, mapping []int) bool {
	n := len(atoms1)
	for i := 0; i < n; i++ {
		if atoms1[i] != atoms2[mapping[i]] {
			return false
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if bonds1.Get(i, j) != bonds2.Get(mapping[i], mapping[j]) {
				return false
			}
		}
	}
	return true
}
