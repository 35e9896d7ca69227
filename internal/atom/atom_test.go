package atom

import "testing"

func TestEncodeDecode(t *testing.T) {
	c := Encode(6, -1)
	if c.Element() != 6 {
		t.Fatalf("expected element 6, got %d", c.Element())
	}
	if c.Charge() != -1 {
		t.Fatalf("expected charge -1, got %d", c.Charge())
	}
}

func TestMaxBondsHydrogenAlwaysOne(t *testing.T) {
	h := Encode(Hydrogen, 0)
	if h.MaxBonds() != 1 {
		t.Fatalf("expected hydrogen max_bonds 1, got %d", h.MaxBonds())
	}
	hCharged := Encode(Hydrogen, 1)
	if hCharged.MaxBonds() != 1 {
		t.Fatalf("expected charged hydrogen to still cap at 1, got %d", hCharged.MaxBonds())
	}
}

func TestMaxBondsCarbonAndNitrogen(t *testing.T) {
	c := Encode(6, 0)
	if c.MaxBonds() != 4 {
		t.Fatalf("expected carbon max_bonds 4, got %d", c.MaxBonds())
	}
	n := Encode(7, 1)
	if n.MaxBonds() != 4 {
		t.Fatalf("expected charged ammonium nitrogen max_bonds 4, got %d", n.MaxBonds())
	}
	o := Encode(8, 0)
	if o.MaxBonds() != 2 {
		t.Fatalf("expected oxygen max_bonds 2, got %d", o.MaxBonds())
	}
}

func TestLabelFormatting(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{Encode(6, 0), "C"},
		{Encode(7, 1), "N+"},
		{Encode(8, -1), "O-"},
		{Encode(15, 2), "P+2"},
	}
	for _, c := range cases {
		if got := c.code.Label(); got != c.want {
			t.Errorf("Label() = %q, want %q", got, c.want)
		}
	}
}

func TestSymbolUnknownElementFallsBackToBracketedNumber(t *testing.T) {
	if got := Symbol(200); got != "[200]" {
		t.Errorf("Symbol(200) = %q, want [200]", got)
	}
}
