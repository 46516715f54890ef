package cost

import "fmt"

// FragmentationSlope calibrates the cost multiplier so that a fully
// fragmented area (index 1.0) costs 3.8x the contiguous baseline, the factor
// observed between Japanese and Vietnamese extension programs.
const FragmentationSlope = 3.8

// DefaultBaseCostPerKm2 is the extension cost of a fully contiguous suitable
// area, in dollars per square kilometer.
const DefaultBaseCostPerKm2 = 1000.0

// Estimate returns the extension cost for a suitable area:
// base * area * (1 + 3.8 * fragmentationIndex). The result grows with both
// area and fragmentation; with index 0 it is exactly base * area.
func Estimate(fragmentationIndex, suitableAreaKm2, baseCostPerKm2 float64) (float64, error) {
	if fragmentationIndex < 0 || fragmentationIndex > 1 {
		return 0, fmt.Errorf("cost: fragmentation index must be between 0 and 1, got %g", fragmentationIndex)
	}
	if suitableAreaKm2 < 0 {
		return 0, fmt.Errorf("cost: suitable area must not be negative, got %g", suitableAreaKm2)
	}
	if baseCostPerKm2 <= 0 {
		return 0, fmt.Errorf("cost: base cost must be positive, got %g", baseCostPerKm2)
	}

	multiplier := 1 + FragmentationSlope*fragmentationIndex
	return baseCostPerKm2 * suitableAreaKm2 * multiplier, nil
}
