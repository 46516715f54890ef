package waterbalance

import (
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"
)

// SweepRow is one threshold of a sensitivity sweep.
type SweepRow struct {
	ThresholdMM        float64 `csv:"threshold_mm"`
	FractionSuitable   float64 `csv:"fraction_suitable"`
	SuitabilityClass   int     `csv:"suitability_class"`
	NumSuitableDekads  int     `csv:"num_suitable_dekads"`
	NumTotalDekads     int     `csv:"num_total_dekads"`
	PercentageSuitable float64 `csv:"percentage_suitable"`
}

const sweepWorkers = 8

// SensitivitySweep recomputes the suitability fraction and class for each
// deficit threshold independently. Output rows follow the input threshold
// order. All thresholds must be negative.
func SensitivitySweep(series []float64, w SeasonWindow, thresholdsMM []float64) ([]SweepRow, error) {
	for _, t := range thresholdsMM {
		if t >= 0 {
			return nil, fmt.Errorf("waterbalance: deficit thresholds must be negative, got %g", t)
		}
	}

	rows := make([]SweepRow, len(thresholdsMM))
	var (
		mu       sync.Mutex
		firstErr error
	)

	wp := workerpool.New(sweepWorkers)
	for i, threshold := range thresholdsMM {
		i, threshold := i, threshold
		wp.Submit(func() {
			res := SuitabilityFraction(series, w, threshold)
			class, err := Classify(res.Fraction, DefaultHighThreshold, DefaultModerateThreshold)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			rows[i] = SweepRow{
				ThresholdMM:        threshold,
				FractionSuitable:   res.Fraction,
				SuitabilityClass:   class,
				NumSuitableDekads:  res.NumSuitable,
				NumTotalDekads:     res.NumTotal,
				PercentageSuitable: res.Fraction * 100,
			}
		})
	}
	wp.StopWait()

	if firstErr != nil {
		return nil, fmt.Errorf("waterbalance: sensitivity sweep failed: %w", firstErr)
	}
	return rows, nil
}
