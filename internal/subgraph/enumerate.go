// Node-set enumeration: connected induced sub-node-sets of a Graph, grown
// incrementally from a size-3 base case, per
// original_source/src/subgraphs/{base_case,iteration}.rs.
// coding=utf-8
// @Project : moasm
// @File    : enumerate.go
package subgraph

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cx-luo/moasm/internal/molgraph"
)

// key canonicalizes a sorted node-set into a string suitable for
// deduplication, mirroring the sorted-vec HashSet dedup in
// subgraphs/base_case.rs and subgraphs/iteration.rs.
func key(nodes []int) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func sorted(nodes []int) []int {
	out := append([]int(nil), nodes...)
	sort.Ints(out)
	return out
}

func contains(nodes []int, v int) bool {
	for _, n := range nodes {
		if n == v {
			return true
		}
	}
	return false
}

// baseTriples enumerates every size-3 connected induced node-set: every
// pair of distinct neighbours (a,c) of some vertex b yields the triple
// {a,b,c}, deduplicated.
func baseTriples(g *molgraph.Graph) [][]int {
	seen := make(map[string]bool)
	var out [][]int
	for b := 0; b < g.N(); b++ {
		neighbors := g.Neighbors(b)
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				triple := sorted([]int{neighbors[i], b, neighbors[j]})
				k := key(triple)
				if !seen[k] {
					seen[k] = true
					out = append(out, triple)
				}
			}
		}
	}
	return out
}

// grow extends each (k-1)-node-set in prev by one neighbouring node not
// already in the set, deduplicating the resulting k-node-sets.
func grow(g *molgraph.Graph, prev [][]int) [][]int {
	seen := make(map[string]bool)
	var out [][]int
	for _, set := range prev {
		for _, node := range set {
			for _, nb := range g.Neighbors(node) {
				if contains(set, nb) {
					continue
				}
				grown := sorted(append(append([]int(nil), set...), nb))
				k := key(grown)
				if !seen[k] {
					seen[k] = true
					out = append(out, grown)
				}
			}
		}
	}
	return out
}

// EnumerateNodeSets returns every connected induced node-set of size k, for
// k >= 3. Sizes below 3 or graphs too small to contain any such set yield
// an empty (nil) result.
func EnumerateNodeSets(g *molgraph.Graph, k int) [][]int {
	if k < 3 || g.N() < k {
		return nil
	}
	sets := baseTriples(g)
	for size := 4; size <= k; size++ {
		sets = grow(g, sets)
	}
	return sets
}

// BuildClasses enumerates size-k connected induced node-sets of g and
// quotients the resulting subgraphs by isomorphism into a ClassSet.
func BuildClasses(g *molgraph.Graph, k int) *ClassSet {
	cs := NewClassSet()
	for _, nodes := range EnumerateNodeSets(g, k) {
		cs.Add(g.Subgraph(nodes))
	}
	return cs
}
