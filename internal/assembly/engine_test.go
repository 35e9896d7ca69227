package assembly

import (
	"testing"

	"github.com/cx-luo/moasm/internal/atom"
	"github.com/cx-luo/moasm/internal/molgraph"
	"github.com/cx-luo/moasm/internal/subgraph"
)

func ammoniumGraph() *molgraph.Graph {
	// NH4+: nitrogen with formal charge +1 (max_bonds 4), four hydrogens,
	// each singly bonded to the nitrogen.
	g := molgraph.NewWithSize(5)
	g.SetAtom(0, atom.Encode(7, 1))
	for i := 1; i <= 4; i++ {
		g.SetAtom(i, atom.Encode(1, 0))
		g.SetBond(0, i, 1)
	}
	return g
}

func benzeneGraph() *molgraph.Graph {
	// C6H6: six ring carbons (0-5) with alternating single/double bonds,
	// each bearing one hydrogen (6-11) on a single bond.
	g := molgraph.NewWithSize(12)
	for i := 0; i < 6; i++ {
		g.SetAtom(i, atom.Encode(6, 0))
	}
	for i := 6; i < 12; i++ {
		g.SetAtom(i, atom.Encode(1, 0))
		g.SetBond(i-6, i, 1)
	}
	ringOrders := [6]int8{2, 1, 2, 1, 2, 1}
	for i := 0; i < 6; i++ {
		j := (i + 1) % 6
		g.SetBond(i, j, ringOrders[i])
	}
	return g
}

func ethanolGraph() *molgraph.Graph {
	// C2H6O: O(0)-CH2(1)-CH3(2), with the hydroxyl hydrogen on O and the
	// remaining five hydrogens (4-8) split 2/3 across the two carbons.
	g := molgraph.NewWithSize(9)
	g.SetAtom(0, atom.Encode(8, 0))
	g.SetAtom(1, atom.Encode(6, 0))
	g.SetAtom(2, atom.Encode(6, 0))
	for i := 3; i <= 8; i++ {
		g.SetAtom(i, atom.Encode(1, 0))
	}
	g.SetBond(0, 1, 1)
	g.SetBond(1, 2, 1)
	g.SetBond(0, 3, 1)
	g.SetBond(1, 4, 1)
	g.SetBond(1, 5, 1)
	g.SetBond(2, 6, 1)
	g.SetBond(2, 7, 1)
	g.SetBond(2, 8, 1)
	return g
}

func TestAssembleReconstructsBenzene(t *testing.T) {
	target := benzeneGraph()
	d := subgraph.Build(target)

	engine := NewEngine(d)
	engine.MaxFrontier = 0

	results, _, ok := engine.Assemble(nil)
	if !ok {
		t.Fatalf("expected assembly to complete without hitting a budget")
	}

	found := false
	for _, g := range results {
		if g.Equal(target) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected the reconstructed result set to contain the original benzene graph")
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one reconstructed structure for benzene, got %d", len(results))
	}
}

func TestAssembleReconstructsEthanol(t *testing.T) {
	target := ethanolGraph()
	d := subgraph.Build(target)

	engine := NewEngine(d)
	engine.MaxFrontier = 0

	results, _, ok := engine.Assemble(nil)
	if !ok {
		t.Fatalf("expected assembly to complete without hitting a budget")
	}

	found := false
	for _, g := range results {
		if g.Equal(target) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected the reconstructed result set to contain the original ethanol graph")
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one reconstructed structure for ethanol, got %d", len(results))
	}
}

func TestAssembleReconstructsAmmonium(t *testing.T) {
	target := ammoniumGraph()
	d := subgraph.Build(target)

	engine := NewEngine(d)
	engine.MaxFrontier = 0

	results, _, ok := engine.Assemble(nil)
	if !ok {
		t.Fatalf("expected assembly to complete without hitting a budget")
	}

	found := false
	for _, g := range results {
		if g.Equal(target) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected the reconstructed result set to contain the original ammonium graph")
	}
}

func TestAssembleGivesUpOnFrontierBudget(t *testing.T) {
	target := ammoniumGraph()
	d := subgraph.Build(target)

	engine := NewEngine(d)
	engine.MaxFrontier = 1

	_, _, ok := engine.Assemble(nil)
	if ok {
		t.Fatalf("expected an unreasonably tight frontier budget to force a give-up")
	}
}

func TestDescriptorEqualityAtEmission(t *testing.T) {
	target := ammoniumGraph()
	d := subgraph.Build(target)

	engine := NewEngine(d)
	results, _, ok := engine.Assemble(nil)
	if !ok {
		t.Fatalf("expected assembly to complete")
	}

	for _, g := range results {
		if !subgraph.Build(g).Equal(d) {
			t.Fatalf("expected every emitted graph's descriptor to equal the target descriptor")
		}
	}
}
