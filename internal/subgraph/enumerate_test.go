package subgraph

import (
	"testing"

	"github.com/cx-luo/moasm/internal/atom"
	"github.com/cx-luo/moasm/internal/molgraph"
)

func benzeneRing() *molgraph.Graph {
	g := molgraph.NewWithSize(6)
	for i := 0; i < 6; i++ {
		g.SetAtom(i, atom.Encode(6, 0))
	}
	for i := 0; i < 6; i++ {
		order := int8(1)
		if i%2 == 0 {
			order = 2
		}
		g.SetBond(i, (i+1)%6, order)
	}
	return g
}

func TestEnumerateNodeSetsBaseTriples(t *testing.T) {
	g := benzeneRing()
	triples := EnumerateNodeSets(g, 3)
	if len(triples) != 6 {
		t.Fatalf("expected 6 distinct size-3 node-sets around a 6-ring, got %d", len(triples))
	}
	for _, tr := range triples {
		if len(tr) != 3 {
			t.Fatalf("expected triples of length 3, got %d", len(tr))
		}
	}
}

func TestEnumerateNodeSetsTooSmall(t *testing.T) {
	g := molgraph.NewWithSize(2)
	if sets := EnumerateNodeSets(g, 4); sets != nil {
		t.Fatalf("expected no size-4 sets in a 2-node graph, got %v", sets)
	}
}

func TestBuildClassesQuotientsIsomorphicStars(t *testing.T) {
	// A 5-node path holds three overlapping but isomorphic 3-node paths.
	g := molgraph.NewWithSize(5)
	for i := 0; i < 5; i++ {
		g.SetAtom(i, atom.Encode(6, 0))
	}
	g.SetBond(0, 1, 1)
	g.SetBond(1, 2, 1)
	g.SetBond(2, 3, 1)
	g.SetBond(3, 4, 1)

	classes := BuildClasses(g, 3)
	entries := classes.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected a single isomorphism class of size-3 chains, got %d", len(entries))
	}
	if entries[0].Count != 3 {
		t.Fatalf("expected 3 instances of the size-3 chain in a 5-node path, got %d", entries[0].Count)
	}
}
