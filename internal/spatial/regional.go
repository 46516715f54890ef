package spatial

import (
	"fmt"
	"sort"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
)

// RegionRow is the suitability breakdown for one named region.
type RegionRow struct {
	RegionID       int     `csv:"region_id"`
	RegionName     string  `csv:"region_name"`
	TotalPixels    int     `csv:"total_pixels"`
	SuitablePixels int     `csv:"suitable_pixels"`
	SuitablePct    float64 `csv:"suitability_pct"`
}

// RegionalStatistics tallies suitable cells per region of the region-id grid.
// Regions absent from the grid contribute no row. Rows come out in region id
// order.
func RegionalStatistics(mask *grid.Bool, regionGrid *grid.Int, names map[int]string) ([]RegionRow, error) {
	if !grid.SameDims(mask, regionGrid) {
		return nil, fmt.Errorf("spatial: suitability grid is %dx%d but region grid is %dx%d",
			mask.Rows, mask.Cols, regionGrid.Rows, regionGrid.Cols)
	}

	totals := make(map[int]int)
	suitable := make(map[int]int)
	for i, id := range regionGrid.Cells {
		if _, known := names[id]; !known {
			continue
		}
		totals[id]++
		if mask.Cells[i] {
			suitable[id]++
		}
	}

	rows := []RegionRow{}
	for id, name := range names {
		n := totals[id]
		if n == 0 {
			continue
		}
		rows = append(rows, RegionRow{
			RegionID:       id,
			RegionName:     name,
			TotalPixels:    n,
			SuitablePixels: suitable[id],
			SuitablePct:    100 * float64(suitable[id]) / float64(n),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].RegionID < rows[j].RegionID })
	return rows, nil
}
