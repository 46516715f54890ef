package delivery

import (
	"fmt"
	"time"

	"github.com/agrowatch/awd-atlas-cli/internal/climate"
	"github.com/agrowatch/awd-atlas-cli/internal/dekad"
	"github.com/agrowatch/awd-atlas-cli/internal/studyarea"
	"github.com/agrowatch/awd-atlas-cli/internal/utils"
	"github.com/agrowatch/awd-atlas-cli/internal/waterbalance"
)

// MinimumIrrigationMM is the rainfall floor applied per dekad; below it,
// supplemental irrigation keeps the paddy from drying past recovery.
const MinimumIrrigationMM = 5.0

const fetchRetries = 3

// BuildWaterBalanceSeries fetches one calendar year of daily climate for a
// study area, aggregates it to dekads and derives the annual water balance
// series. percolationMMDay is the daily soil percolation rate, typically the
// area mean from the drainage classification.
func BuildWaterBalanceSeries(sa studyarea.StudyArea, percolationMMDay float64) ([]float64, error) {
	lat, lon, err := studyarea.BoundaryCentroid(sa.Name)
	if err != nil {
		// No boundary file; the bounding box center is close enough for a
		// point climate sample.
		lat, lon = sa.Centroid()
	}

	start := time.Date(sa.Year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(sa.Year, 12, 31, 0, 0, 0, 0, time.UTC)
	history, err := climate.FetchDaily(lat, lon, start, end, fetchRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch climate for %s: %w", sa.Name, err)
	}

	return SeriesFromHistory(history, percolationMMDay)
}

// SeriesFromHistory converts a daily climate record to a dekad water balance
// series: rainfall and PET are summed per dekad, rainfall is floored at the
// minimum irrigation threshold, and the percolation rate is scaled to a
// dekad total.
func SeriesFromHistory(history climate.History, percolationMMDay float64) ([]float64, error) {
	dates := utils.GetSortedKeys(history, true)
	rainfall := make([]float64, len(dates))
	pet := make([]float64, len(dates))
	for i, d := range dates {
		rainfall[i] = history[d].Rainfall
		pet[i] = history[d].PET
	}

	rainfallDekads, err := dekad.Aggregate(dates, rainfall)
	if err != nil {
		return nil, err
	}
	petDekads, err := dekad.Aggregate(dates, pet)
	if err != nil {
		return nil, err
	}
	if len(rainfallDekads) != len(petDekads) {
		return nil, fmt.Errorf("delivery: rainfall has %d dekads but pet has %d", len(rainfallDekads), len(petDekads))
	}

	rainfallValues := make([]float64, len(rainfallDekads))
	for i, t := range rainfallDekads {
		rainfallValues[i] = t.Value
	}
	rainfallValues = dekad.ApplyMinimumIrrigation(rainfallValues, MinimumIrrigationMM)

	percolationDekad := dekad.PercolationTotal(percolationMMDay)
	series := make([]float64, len(rainfallDekads))
	for i := range series {
		series[i] = waterbalance.Compute(rainfallValues[i], petDekads[i].Value, percolationDekad)
	}
	return series, nil
}
