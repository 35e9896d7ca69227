package isomorphism

import (
	"testing"

	"github.com/cx-luo/moasm/internal/matrix"
)

func TestVerifyAcceptsPermutedGraph(t *testing.T) {
	// Triangle of labels {1,1,2}: relabel via rotation and check a
	// bijection is still found.
	atoms1 := Atoms{1, 1, 2}
	bonds1 := matrix.NewDense(3)
	bonds1.SetSymmetric(0, 1, 1)
	bonds1.SetSymmetric(1, 2, 1)
	bonds1.SetSymmetric(0, 2, 1)

	atoms2 := Atoms{2, 1, 1}
	bonds2 := matrix.NewDense(3)
	bonds2.SetSymmetric(0, 1, 1)
	bonds2.SetSymmetric(1, 2, 1)
	bonds2.SetSymmetric(0, 2, 1)

	if !Verify(atoms1, atoms2, bonds1, bonds2) {
		t.Fatalf("expected relabeled triangle to verify as isomorphic")
	}
}

func TestVerifyRejectsDifferentBondOrder(t *testing.T) {
	atoms1 := Atoms{1, 1}
	bonds1 := matrix.NewDense(2)
	bonds1.SetSymmetric(0, 1, 1)

	atoms2 := Atoms{1, 1}
	bonds2 := matrix.NewDense(2)
	bonds2.SetSymmetric(0, 1, 2)

	if Verify(atoms1, atoms2, bonds1, bonds2) {
		t.Fatalf("expected different bond orders to fail verification")
	}
}

func TestVerifyRejectsLabelMismatch(t *testing.T) {
	atoms1 := Atoms{1, 1}
	atoms2 := Atoms{1, 2}
	bonds := matrix.NewDense(2)
	bonds.SetSymmetric(0, 1, 1)

	if Verify(atoms1, atoms2, bonds, bonds) {
		t.Fatalf("expected mismatched label multisets to fail verification")
	}
}

func TestFastFilterSizeMismatch(t *testing.T) {
	if FastFilter(3, 4, 2, 2, 7, 7) {
		t.Fatalf("expected size mismatch to fail fast filter")
	}
}

func TestFastFilterAllMatch(t *testing.T) {
	if !FastFilter(3, 3, 4, 4, 9, 9) {
		t.Fatalf("expected identical invariants to pass fast filter")
	}
}

func TestBitsetSetUnsetEmpty(t *testing.T) {
	bs := fullBitset(5)
	if bs.isEmpty() {
		t.Fatalf("expected full bitset to not be empty")
	}
	for i := 0; i < 5; i++ {
		bs.unset(i)
	}
	if !bs.isEmpty() {
		t.Fatalf("expected bitset to be empty after unsetting every bit")
	}
	bs.set(2)
	if bs.isEmpty() || !bs.isSet(2) {
		t.Fatalf("expected bit 2 to be set")
	}
}
