package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
	"github.com/fogleman/gg"
)

// CreatePatchImage renders a labeled patch grid, cycling hues so neighboring
// labels stay distinguishable. Background cells are near-black.
func CreatePatchImage(labeled *grid.Int, patchCount int, outputImagePath string) error {
	if !strings.HasSuffix(outputImagePath, ".png") {
		outputImagePath += ".png"
	}

	dc := gg.NewContext(labeled.Cols, labeled.Rows)
	for r := 0; r < labeled.Rows; r++ {
		for c := 0; c < labeled.Cols; c++ {
			label := labeled.At(r, c)
			if label == 0 {
				dc.SetRGB(0.15, 0.15, 0.15)
			} else {
				red, green, blue := labelColor(label)
				dc.SetRGB(red, green, blue)
			}
			dc.SetPixel(c, r)
		}
	}

	if err := dc.SavePNG(outputImagePath); err != nil {
		return fmt.Errorf("failed to save patch image: %w", err)
	}
	return nil
}

// labelColor spreads labels over the hue wheel using the golden-ratio step.
func labelColor(label int) (r, g, b float64) {
	hue := math.Mod(float64(label)*0.618033988749895, 1.0) * 360
	c := hue / 60
	x := 1 - math.Abs(math.Mod(c, 2)-1)
	switch int(c) % 6 {
	case 0:
		return 1, x, 0.2
	case 1:
		return x, 1, 0.2
	case 2:
		return 0.2, 1, x
	case 3:
		return 0.2, x, 1
	case 4:
		return x, 0.2, 1
	default:
		return 1, 0.2, x
	}
}
