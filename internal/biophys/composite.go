package biophys

import (
	"fmt"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
	"github.com/agrowatch/awd-atlas-cli/internal/waterbalance"
)

// WaterBalanceFeasible marks cells whose water balance suitability class is at
// least moderate. Class 0 cells are nodata and never feasible.
func WaterBalanceFeasible(wbClass *grid.Int) *grid.Bool {
	ok := grid.NewBool(wbClass.Rows, wbClass.Cols)
	for i, v := range wbClass.Cells {
		ok.Cells[i] = v >= waterbalance.ClassModerate
	}
	return ok
}

// CompositeFeasibility combines the three constraints cell-wise: a cell is
// feasible iff its slope is feasible, its drainage class is at most
// drainageThreshold, and its water balance class is at least moderate.
// All grids must share identical dimensions.
func CompositeFeasibility(slopeOK *grid.Bool, drainageClass, wbClass *grid.Int, drainageThreshold int) (*grid.Bool, error) {
	if !grid.SameDims(slopeOK, drainageClass, wbClass) {
		return nil, fmt.Errorf("biophys: constraint grids have mismatched dimensions (slope %dx%d, drainage %dx%d, water balance %dx%d)",
			slopeOK.Rows, slopeOK.Cols, drainageClass.Rows, drainageClass.Cols, wbClass.Rows, wbClass.Cols)
	}
	if drainageThreshold < DrainageWell || drainageThreshold > DrainagePoor {
		return nil, fmt.Errorf("biophys: drainage threshold must be between %d and %d, got %d",
			DrainageWell, DrainagePoor, drainageThreshold)
	}

	feasible := grid.NewBool(slopeOK.Rows, slopeOK.Cols)
	for i := range feasible.Cells {
		feasible.Cells[i] = slopeOK.Cells[i] &&
			drainageClass.Cells[i] <= drainageThreshold &&
			wbClass.Cells[i] >= waterbalance.ClassModerate
	}
	return feasible, nil
}
