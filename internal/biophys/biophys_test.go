package biophys

import (
	"testing"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
)

func TestSlopeFeasibleFlatTerrain(t *testing.T) {
	dem := grid.NewFloat(5, 5)
	for i := range dem.Cells {
		dem.Cells[i] = 120 // constant elevation
	}

	feasible, err := SlopeFeasible(dem, 30, DefaultSlopeThresholdDeg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := feasible.CountTrue(); got != 25 {
		t.Errorf("flat terrain: %d/25 cells feasible, want all", got)
	}
}

func TestSlopeFeasibleSteepRamp(t *testing.T) {
	// 30m of elevation gain per 30m cell is a 45 degree slope.
	dem := grid.NewFloat(5, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			dem.Set(r, c, float64(c)*30)
		}
	}

	feasible, err := SlopeFeasible(dem, 30, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := feasible.CountTrue(); got != 0 {
		t.Errorf("steep ramp: %d cells feasible, want none", got)
	}
}

func TestSlopeFeasibleInvalidInputs(t *testing.T) {
	dem := grid.NewFloat(2, 2)
	if _, err := SlopeFeasible(dem, 0, 10); err == nil {
		t.Error("expected error for zero cell size")
	}
	if _, err := SlopeFeasible(dem, 30, 91); err == nil {
		t.Error("expected error for slope threshold above 90")
	}
	if _, err := SlopeFeasible(dem, 30, -1); err == nil {
		t.Error("expected error for negative slope threshold")
	}
}

func TestClassifyTexture(t *testing.T) {
	cases := []struct {
		clay, sand float64
		wantClass  int
		wantRate   float64
	}{
		{10, 70, DrainageWell, 12},
		{25, 45, DrainageModerate, 8},
		{40, 20, DrainageImperfect, 4},
		{55, 10, DrainagePoor, 3},
		// Boundary values resolve by the documented cascade.
		{20, 70, DrainageModerate, 8},  // clay exactly 20 is no longer well-drained
		{35, 30, DrainageImperfect, 4}, // clay exactly 35
		{50, 40, DrainagePoor, 3},      // clay exactly 50, sand in moderate range
		{60, 40, DrainagePoor, 3},      // heavy clay wins over its sand fraction
		// No texture rule matches; defaults to moderate.
		{10, 20, DrainageModerate, 8},
	}
	for _, c := range cases {
		class, rate := classifyTexture(c.clay, c.sand)
		if class != c.wantClass {
			t.Errorf("classifyTexture(%g, %g) class = %d, want %d", c.clay, c.sand, class, c.wantClass)
		}
		if rate != c.wantRate {
			t.Errorf("classifyTexture(%g, %g) rate = %g, want %g", c.clay, c.sand, rate, c.wantRate)
		}
	}
}

func TestDrainageClassGrid(t *testing.T) {
	clay, _ := grid.NewFloatFrom(2, 2, []float64{10, 25, 40, 55})
	sand, _ := grid.NewFloatFrom(2, 2, []float64{70, 45, 20, 10})

	class, percolation, err := DrainageClass(clay, sand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantClass := []int{1, 2, 3, 4}
	wantRate := []float64{12, 8, 4, 3}
	for i := range wantClass {
		if class.Cells[i] != wantClass[i] {
			t.Errorf("cell %d class = %d, want %d", i, class.Cells[i], wantClass[i])
		}
		if percolation.Cells[i] != wantRate[i] {
			t.Errorf("cell %d rate = %g, want %g", i, percolation.Cells[i], wantRate[i])
		}
	}
}

func TestDrainageClassShapeMismatch(t *testing.T) {
	clay := grid.NewFloat(2, 2)
	sand := grid.NewFloat(3, 2)
	if _, _, err := DrainageClass(clay, sand); err == nil {
		t.Error("expected error for mismatched grids")
	}
}

func TestDrainageFeasible(t *testing.T) {
	class, _ := grid.NewIntFrom(1, 4, []int{1, 2, 3, 4})
	ok, err := DrainageFeasible(class, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []bool{true, true, true, false}
	for i := range want {
		if ok.Cells[i] != want[i] {
			t.Errorf("cell %d feasible = %v, want %v", i, ok.Cells[i], want[i])
		}
	}

	if _, err := DrainageFeasible(class, 0); err == nil {
		t.Error("expected error for out-of-range threshold")
	}
}

func TestMeanPercolation(t *testing.T) {
	p, _ := grid.NewFloatFrom(1, 4, []float64{12, 8, 4, 3})
	if got, want := MeanPercolation(p), 27.0/4; got != want {
		t.Errorf("MeanPercolation = %g, want %g", got, want)
	}
	if got := MeanPercolation(grid.NewFloat(0, 0)); got != 0 {
		t.Errorf("MeanPercolation of empty grid = %g, want 0", got)
	}
}

func TestCompositeFeasibilityIsCellwiseAnd(t *testing.T) {
	slopeOK, _ := grid.NewBoolFrom(2, 2, []bool{true, true, false, true})
	drainage, _ := grid.NewIntFrom(2, 2, []int{2, 4, 1, 3})
	wbClass, _ := grid.NewIntFrom(2, 2, []int{3, 3, 3, 1})

	feasible, err := CompositeFeasibility(slopeOK, drainage, wbClass, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range feasible.Cells {
		want := slopeOK.Cells[i] && drainage.Cells[i] <= 3 && wbClass.Cells[i] >= 2
		if feasible.Cells[i] != want {
			t.Errorf("cell %d composite = %v, want %v", i, feasible.Cells[i], want)
		}
	}
	// Only cell 0 passes all three.
	if got := feasible.CountTrue(); got != 1 {
		t.Errorf("feasible cells = %d, want 1", got)
	}
}

func TestCompositeFeasibilityShapeMismatch(t *testing.T) {
	slopeOK := grid.NewBool(2, 2)
	drainage := grid.NewInt(2, 3)
	wbClass := grid.NewInt(2, 2)
	if _, err := CompositeFeasibility(slopeOK, drainage, wbClass, 3); err == nil {
		t.Error("expected error for mismatched grids")
	}
}

func TestWaterBalanceFeasible(t *testing.T) {
	wbClass, _ := grid.NewIntFrom(1, 4, []int{0, 1, 2, 3})
	ok := WaterBalanceFeasible(wbClass)
	want := []bool{false, false, true, true}
	for i := range want {
		if ok.Cells[i] != want[i] {
			t.Errorf("cell %d feasible = %v, want %v", i, ok.Cells[i], want[i])
		}
	}
}

func TestConstraintImportance(t *testing.T) {
	// 4 cells: slope passes 3, drainage passes 2, water balance passes 2,
	// all three pass on exactly 1.
	slopeOK, _ := grid.NewBoolFrom(2, 2, []bool{true, true, true, false})
	drainageOK, _ := grid.NewBoolFrom(2, 2, []bool{true, true, false, false})
	wbOK, _ := grid.NewBoolFrom(2, 2, []bool{true, false, true, false})

	rows, err := ConstraintImportance(slopeOK, drainageOK, wbOK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected 7 constraint combinations, got %d", len(rows))
	}

	want := map[string]float64{
		"Slope only":               75,
		"Drainage only":            50,
		"Water balance only":       50,
		"Slope + Drainage":         50,
		"Slope + Water balance":    50,
		"Drainage + Water balance": 25,
		"All three":                25,
	}
	for _, row := range rows {
		if row.FeasiblePct != want[row.Constraint] {
			t.Errorf("%s = %g%%, want %g%%", row.Constraint, row.FeasiblePct, want[row.Constraint])
		}
	}
}
