package waterbalance

import "fmt"

// Suitability classes derived from the fraction of AWD-suitable dekads in the
// growing season.
const (
	ClassLow      = 1
	ClassModerate = 2
	ClassHigh     = 3
)

// Default fraction breakpoints and season exclusions.
const (
	DefaultHighThreshold     = 0.66
	DefaultModerateThreshold = 0.33
	DefaultExcludeFirst      = 2
	DefaultExcludeLast       = 1
)

// Compute returns the dekad water balance in mm. Negative values mean the
// field is drying, positive values a surplus.
func Compute(rainfallMM, petMM, percolationMM float64) float64 {
	return rainfallMM - (petMM + percolationMM)
}

// DekadSuitable reports whether a single dekad supports an AWD drying cycle:
// the balance must be negative (field dries) but not below deficitThresholdMM
// (crop stress). The acceptance band is [deficitThresholdMM, 0).
func DekadSuitable(waterBalanceMM, deficitThresholdMM float64) bool {
	return waterBalanceMM < 0 && waterBalanceMM >= deficitThresholdMM
}

// SeasonWindow delimits the growing season in dekad indexes and the number of
// establishment/harvest dekads excluded from the suitability test.
type SeasonWindow struct {
	StartDekad   int
	EndDekad     int
	ExcludeFirst int
	ExcludeLast  int
}

// DefaultWindow applies the standard establishment and harvest exclusions.
func DefaultWindow(startDekad, endDekad int) SeasonWindow {
	return SeasonWindow{
		StartDekad:   startDekad,
		EndDekad:     endDekad,
		ExcludeFirst: DefaultExcludeFirst,
		ExcludeLast:  DefaultExcludeLast,
	}
}

// FractionResult is the outcome of a season suitability count. Degenerate is
// set when the active window had zero or negative length; the zero values it
// carries are a well-defined answer for that case, not an error.
type FractionResult struct {
	Fraction    float64
	NumSuitable int
	NumTotal    int
	Degenerate  bool
}

// SuitabilityFraction counts the active-season dekads whose water balance
// falls in [deficitThresholdMM, 0). The active window is the inclusive index
// range [StartDekad+ExcludeFirst, EndDekad-ExcludeLast] into series; indexes
// past the end of the series are ignored.
func SuitabilityFraction(series []float64, w SeasonWindow, deficitThresholdMM float64) FractionResult {
	activeStart := w.StartDekad + w.ExcludeFirst
	activeEnd := w.EndDekad - w.ExcludeLast

	if activeStart >= activeEnd || activeStart >= len(series) || activeStart < 0 {
		return FractionResult{Degenerate: true}
	}
	if activeEnd >= len(series) {
		activeEnd = len(series) - 1
	}

	active := series[activeStart : activeEnd+1]
	suitable := 0
	for _, wb := range active {
		if DekadSuitable(wb, deficitThresholdMM) {
			suitable++
		}
	}

	return FractionResult{
		Fraction:    float64(suitable) / float64(len(active)),
		NumSuitable: suitable,
		NumTotal:    len(active),
	}
}

// Classify maps a suitability fraction to an ordinal class:
// fraction >= high -> 3, moderate <= fraction < high -> 2, else 1.
// Fractions outside [0,1] are rejected rather than clamped.
func Classify(fraction, highThreshold, moderateThreshold float64) (int, error) {
	if fraction < 0 || fraction > 1 {
		return 0, fmt.Errorf("waterbalance: fraction must be between 0 and 1, got %g", fraction)
	}
	switch {
	case fraction >= highThreshold:
		return ClassHigh, nil
	case fraction >= moderateThreshold:
		return ClassModerate, nil
	default:
		return ClassLow, nil
	}
}
