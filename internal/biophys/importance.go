package biophys

import (
	"fmt"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
)

// ImportanceRow reports the share of the grid satisfying one combination of
// constraints. Percentages always use the full cell count as denominator,
// nodata cells included.
type ImportanceRow struct {
	Constraint  string  `csv:"constraint"`
	FeasiblePct float64 `csv:"feasible_pct"`
}

// ConstraintImportance evaluates every non-empty AND-combination of the three
// constraints, for diagnosing which one limits adoption the most.
func ConstraintImportance(slopeOK, drainageOK, wbOK *grid.Bool) ([]ImportanceRow, error) {
	if !grid.SameDims(slopeOK, drainageOK, wbOK) {
		return nil, fmt.Errorf("biophys: constraint grids have mismatched dimensions (slope %dx%d, drainage %dx%d, water balance %dx%d)",
			slopeOK.Rows, slopeOK.Cols, drainageOK.Rows, drainageOK.Cols, wbOK.Rows, wbOK.Cols)
	}

	total := float64(len(slopeOK.Cells))
	pct := func(grids ...*grid.Bool) float64 {
		if total == 0 {
			return 0
		}
		n := 0
		for i := range slopeOK.Cells {
			all := true
			for _, g := range grids {
				if !g.Cells[i] {
					all = false
					break
				}
			}
			if all {
				n++
			}
		}
		return 100 * float64(n) / total
	}

	return []ImportanceRow{
		{Constraint: "Slope only", FeasiblePct: pct(slopeOK)},
		{Constraint: "Drainage only", FeasiblePct: pct(drainageOK)},
		{Constraint: "Water balance only", FeasiblePct: pct(wbOK)},
		{Constraint: "Slope + Drainage", FeasiblePct: pct(slopeOK, drainageOK)},
		{Constraint: "Slope + Water balance", FeasiblePct: pct(slopeOK, wbOK)},
		{Constraint: "Drainage + Water balance", FeasiblePct: pct(drainageOK, wbOK)},
		{Constraint: "All three", FeasiblePct: pct(slopeOK, drainageOK, wbOK)},
	}, nil
}
