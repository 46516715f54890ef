package biophys

import (
	"fmt"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
	"github.com/gammazero/workerpool"
)

// Drainage classes derived from soil texture.
const (
	DrainageWell      = 1
	DrainageModerate  = 2
	DrainageImperfect = 3
	DrainagePoor      = 4
)

// DefaultDrainageThreshold admits everything but poorly-drained soils.
const DefaultDrainageThreshold = DrainageImperfect

const drainageWorkers = 8

// classifyTexture is an ordered first-match cascade so that every cell gets
// exactly one class. Heavy-clay rules run before the sand-based moderate rule
// to keep poorly drained soils from being captured by their sand fraction;
// cells matching no texture rule default to moderate.
func classifyTexture(clayPct, sandPct float64) (class int, percolationMMDay float64) {
	switch {
	case clayPct >= 50:
		return DrainagePoor, 3.0
	case clayPct >= 35:
		return DrainageImperfect, 4.0
	case clayPct < 20 && sandPct > 60:
		return DrainageWell, 12.0
	default:
		return DrainageModerate, 8.0
	}
}

// DrainageClass classifies each cell's drainage from clay and sand content
// (0-100%) and returns the matching percolation rate grid in mm/day.
func DrainageClass(clayPct, sandPct *grid.Float) (*grid.Int, *grid.Float, error) {
	if !grid.SameDims(clayPct, sandPct) {
		return nil, nil, fmt.Errorf("biophys: clay grid is %dx%d but sand grid is %dx%d",
			clayPct.Rows, clayPct.Cols, sandPct.Rows, sandPct.Cols)
	}

	class := grid.NewInt(clayPct.Rows, clayPct.Cols)
	percolation := grid.NewFloat(clayPct.Rows, clayPct.Cols)

	wp := workerpool.New(drainageWorkers)
	for r := 0; r < clayPct.Rows; r++ {
		r := r
		wp.Submit(func() {
			for c := 0; c < clayPct.Cols; c++ {
				cl, rate := classifyTexture(clayPct.At(r, c), sandPct.At(r, c))
				class.Set(r, c, cl)
				percolation.Set(r, c, rate)
			}
		})
	}
	wp.StopWait()

	return class, percolation, nil
}

// DrainageFeasible marks cells whose drainage class does not exceed threshold.
func DrainageFeasible(class *grid.Int, threshold int) (*grid.Bool, error) {
	if threshold < DrainageWell || threshold > DrainagePoor {
		return nil, fmt.Errorf("biophys: drainage threshold must be between %d and %d, got %d",
			DrainageWell, DrainagePoor, threshold)
	}
	ok := grid.NewBool(class.Rows, class.Cols)
	for i, v := range class.Cells {
		ok.Cells[i] = v <= threshold
	}
	return ok, nil
}

// MeanPercolation averages the percolation rate across the grid, giving the
// per-day rate used to build the dekad water balance series.
func MeanPercolation(percolation *grid.Float) float64 {
	if len(percolation.Cells) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range percolation.Cells {
		sum += v
	}
	return sum / float64(len(percolation.Cells))
}
