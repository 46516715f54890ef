package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
	"github.com/agrowatch/awd-atlas-cli/internal/properties"
)

// CreateFeasibilityImage renders a boolean feasibility grid as a PNG, green
// for feasible cells and dark gray for the rest.
func CreateFeasibilityImage(feasible *grid.Bool, outputImagePath string) error {
	if !strings.HasSuffix(outputImagePath, ".png") {
		outputImagePath += ".png"
	}

	img := image.NewRGBA(image.Rect(0, 0, feasible.Cols, feasible.Rows))
	for r := 0; r < feasible.Rows; r++ {
		for c := 0; c < feasible.Cols; c++ {
			cl := properties.InfeasibleColor
			if feasible.At(r, c) {
				cl = properties.FeasibleColor
			}
			img.Set(c, r, color.RGBA{R: cl.R, G: cl.G, B: cl.B, A: 255})
		}
	}

	outputFile, err := os.Create(outputImagePath)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, img); err != nil {
		return fmt.Errorf("failed to encode PNG file: %w", err)
	}
	return nil
}

// CreateClassImage renders a suitability class grid with the standard class
// colors.
func CreateClassImage(class *grid.Int, outputImagePath string) error {
	if !strings.HasSuffix(outputImagePath, ".png") {
		outputImagePath += ".png"
	}

	img := image.NewRGBA(image.Rect(0, 0, class.Cols, class.Rows))
	for r := 0; r < class.Rows; r++ {
		for c := 0; c < class.Cols; c++ {
			cl, ok := properties.SuitabilityColors[class.At(r, c)]
			if !ok {
				cl = properties.SuitabilityColors[0]
			}
			img.Set(c, r, color.RGBA{R: cl.R, G: cl.G, B: cl.B, A: 255})
		}
	}

	outputFile, err := os.Create(outputImagePath)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, img); err != nil {
		return fmt.Errorf("failed to encode PNG file: %w", err)
	}
	return nil
}
