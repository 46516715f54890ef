package cost

import (
	"math"
	"testing"
)

func TestEstimateContiguousArea(t *testing.T) {
	// Zero fragmentation: cost is exactly base * area.
	got, err := Estimate(0, 120, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 120_000 {
		t.Errorf("cost = %g, want 120000", got)
	}
}

func TestEstimateFullyFragmented(t *testing.T) {
	got, err := Estimate(1, 100, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-480_000) > 1e-9 {
		t.Errorf("cost = %g, want 480000 (4.8x multiplier)", got)
	}
}

func TestEstimateMonotone(t *testing.T) {
	prev := -1.0
	for index := 0.0; index <= 1.0; index += 0.1 {
		c, err := Estimate(index, 50, 1000)
		if err != nil {
			t.Fatalf("Estimate(%g): %v", index, err)
		}
		if c <= prev {
			t.Fatalf("cost not increasing in fragmentation index at %g", index)
		}
		prev = c
	}

	small, _ := Estimate(0.5, 10, 1000)
	large, _ := Estimate(0.5, 20, 1000)
	if large <= small {
		t.Errorf("cost not increasing in area: %g <= %g", large, small)
	}
}

func TestEstimateInvalidInputs(t *testing.T) {
	cases := []struct {
		name              string
		index, area, base float64
	}{
		{"negative index", -0.1, 10, 1000},
		{"index above 1", 1.1, 10, 1000},
		{"negative area", 0.5, -1, 1000},
		{"zero base cost", 0.5, 10, 0},
		{"negative base cost", 0.5, 10, -5},
	}
	for _, c := range cases {
		if _, err := Estimate(c.index, c.area, c.base); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestEstimateZeroArea(t *testing.T) {
	got, err := Estimate(0.7, 0, 1000)
	if err != nil {
		t.Fatalf("zero area is a valid degenerate input: %v", err)
	}
	if got != 0 {
		t.Errorf("cost = %g, want 0", got)
	}
}
