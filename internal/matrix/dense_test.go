package matrix

import "testing"

func TestGetSetSymmetric(t *testing.T) {
	m := NewDense(3)
	m.SetSymmetric(0, 2, 3)
	if m.Get(0, 2) != 3 || m.Get(2, 0) != 3 {
		t.Fatalf("expected symmetric set to populate both (0,2) and (2,0)")
	}
	if m.Get(1, 1) != 0 {
		t.Fatalf("expected untouched cell to remain zero")
	}
}

func TestGrowPreservesTopLeftBlock(t *testing.T) {
	m := NewDense(2)
	m.SetSymmetric(0, 1, 2)
	grown := m.Grow(1)

	if grown.Size() != 3 {
		t.Fatalf("expected grown size 3, got %d", grown.Size())
	}
	if grown.Get(0, 1) != 2 || grown.Get(1, 0) != 2 {
		t.Fatalf("expected original block to survive growth")
	}
	if grown.Get(2, 0) != 0 || grown.Get(0, 2) != 0 {
		t.Fatalf("expected new rows/columns to be zero")
	}
}

func TestClone(t *testing.T) {
	m := NewDense(2)
	m.Set(0, 0, 5)
	clone := m.Clone()
	clone.Set(0, 0, 9)

	if m.Get(0, 0) != 5 {
		t.Fatalf("expected clone mutation to not affect original")
	}
}

func TestSubmatrix(t *testing.T) {
	m := NewDense(3)
	m.SetSymmetric(0, 1, 1)
	m.SetSymmetric(1, 2, 2)
	m.SetSymmetric(0, 2, 3)

	sub := m.Submatrix([]int{2, 0})
	if sub.Size() != 2 {
		t.Fatalf("expected submatrix of size 2, got %d", sub.Size())
	}
	if sub.Get(0, 1) != 3 || sub.Get(1, 0) != 3 {
		t.Fatalf("expected reordered submatrix to carry (2,0)'s value at (0,1)")
	}
}

func TestIndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected out-of-range access to panic")
		}
	}()
	m := NewDense(2)
	m.Get(5, 0)
}
