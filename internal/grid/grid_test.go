package grid

import "testing"

func TestFloatAccess(t *testing.T) {
	g := NewFloat(2, 3)
	g.Set(1, 2, 4.5)
	if got := g.At(1, 2); got != 4.5 {
		t.Errorf("At(1,2) = %g, want 4.5", got)
	}
	if got := g.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %g, want 0", got)
	}
}

func TestNewFromValidatesLength(t *testing.T) {
	if _, err := NewFloatFrom(2, 2, []float64{1, 2, 3}); err == nil {
		t.Error("expected error for wrong cell count")
	}
	if _, err := NewIntFrom(2, 2, []int{1, 2, 3, 4, 5}); err == nil {
		t.Error("expected error for wrong cell count")
	}
	if _, err := NewBoolFrom(1, 2, []bool{true}); err == nil {
		t.Error("expected error for wrong cell count")
	}
}

func TestCountTrue(t *testing.T) {
	g, err := NewBoolFrom(2, 2, []bool{true, false, true, true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.CountTrue(); got != 3 {
		t.Errorf("CountTrue = %d, want 3", got)
	}
}

func TestSameDims(t *testing.T) {
	a := NewFloat(3, 4)
	b := NewInt(3, 4)
	c := NewBool(4, 3)
	if !SameDims(a, b) {
		t.Error("3x4 grids should match")
	}
	if SameDims(a, b, c) {
		t.Error("4x3 grid should not match 3x4 grids")
	}
	if !SameDims(a) {
		t.Error("single grid always matches")
	}
}
