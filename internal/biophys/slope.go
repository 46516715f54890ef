package biophys

import (
	"fmt"
	"math"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
	"golang.org/x/sync/errgroup"
)

// DefaultSlopeThresholdDeg is the steepest terrain on which flood-and-drain
// cycles can still be managed uniformly.
const DefaultSlopeThresholdDeg = 10.0

const slopeWorkers = 8

// SlopeFeasible derives a per-cell slope estimate from the elevation grid and
// marks cells below thresholdDeg feasible. Gradients come from a 3x3 Sobel
// filter in both axes with edge replication at the grid border; the slope is
// atan(gradient magnitude / cell size) in degrees.
func SlopeFeasible(dem *grid.Float, cellSizeMeters, thresholdDeg float64) (*grid.Bool, error) {
	if cellSizeMeters <= 0 {
		return nil, fmt.Errorf("biophys: cell size must be positive, got %g", cellSizeMeters)
	}
	if thresholdDeg < 0 || thresholdDeg > 90 {
		return nil, fmt.Errorf("biophys: slope threshold must be between 0 and 90 degrees, got %g", thresholdDeg)
	}

	feasible := grid.NewBool(dem.Rows, dem.Cols)

	var eg errgroup.Group
	eg.SetLimit(slopeWorkers)
	for r := 0; r < dem.Rows; r++ {
		r := r
		eg.Go(func() error {
			for c := 0; c < dem.Cols; c++ {
				gx, gy := sobelAt(dem, r, c)
				slopeDeg := math.Atan(math.Hypot(gx, gy)/cellSizeMeters) * 180 / math.Pi
				feasible.Set(r, c, slopeDeg < thresholdDeg)
			}
			return nil
		})
	}
	eg.Wait()

	return feasible, nil
}

// clampAt replicates the border cell for out-of-range neighbor reads.
func clampAt(g *grid.Float, r, c int) float64 {
	if r < 0 {
		r = 0
	} else if r >= g.Rows {
		r = g.Rows - 1
	}
	if c < 0 {
		c = 0
	} else if c >= g.Cols {
		c = g.Cols - 1
	}
	return g.At(r, c)
}

func sobelAt(g *grid.Float, r, c int) (gx, gy float64) {
	nw := clampAt(g, r-1, c-1)
	n := clampAt(g, r-1, c)
	ne := clampAt(g, r-1, c+1)
	w := clampAt(g, r, c-1)
	e := clampAt(g, r, c+1)
	sw := clampAt(g, r+1, c-1)
	s := clampAt(g, r+1, c)
	se := clampAt(g, r+1, c+1)

	gx = (ne + 2*e + se) - (nw + 2*w + sw)
	gy = (sw + 2*s + se) - (nw + 2*n + ne)
	return gx, gy
}
