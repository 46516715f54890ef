package spatial

import (
	"sort"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
)

// ClusterRow describes one suitable patch at or above the minimum size, with
// its bounding box in grid coordinates.
type ClusterRow struct {
	ID         int `csv:"cluster_id"`
	SizePixels int `csv:"size_pixels"`
	MinRow     int `csv:"min_row"`
	MaxRow     int `csv:"max_row"`
	MinCol     int `csv:"min_col"`
	MaxCol     int `csv:"max_col"`
	ExtentRows int `csv:"extent_rows"`
	ExtentCols int `csv:"extent_cols"`
}

// Clusters relabels mask and returns the patches of at least minClusterSize
// cells, sorted by size descending. Smaller patches are omitted entirely.
func Clusters(mask *grid.Bool, minClusterSize int) []ClusterRow {
	labeled, count := ExtractPatches(mask)
	if count == 0 {
		return nil
	}

	rows := make([]ClusterRow, count+1)
	for i := range rows {
		rows[i] = ClusterRow{ID: i, MinRow: -1}
	}
	for r := 0; r < labeled.Rows; r++ {
		for c := 0; c < labeled.Cols; c++ {
			label := labeled.At(r, c)
			if label == 0 {
				continue
			}
			cl := &rows[label]
			cl.SizePixels++
			if cl.MinRow < 0 {
				cl.MinRow, cl.MaxRow = r, r
				cl.MinCol, cl.MaxCol = c, c
				continue
			}
			if r < cl.MinRow {
				cl.MinRow = r
			}
			if r > cl.MaxRow {
				cl.MaxRow = r
			}
			if c < cl.MinCol {
				cl.MinCol = c
			}
			if c > cl.MaxCol {
				cl.MaxCol = c
			}
		}
	}

	out := []ClusterRow{}
	for _, cl := range rows[1:] {
		if cl.SizePixels < minClusterSize {
			continue
		}
		cl.ExtentRows = cl.MaxRow - cl.MinRow
		cl.ExtentCols = cl.MaxCol - cl.MinCol
		out = append(out, cl)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SizePixels != out[j].SizePixels {
			return out[i].SizePixels > out[j].SizePixels
		}
		return out[i].ID < out[j].ID
	})
	return out
}
