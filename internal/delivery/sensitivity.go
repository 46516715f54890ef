package delivery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrowatch/awd-atlas-cli/internal/properties"
	"github.com/agrowatch/awd-atlas-cli/internal/studyarea"
	"github.com/agrowatch/awd-atlas-cli/internal/waterbalance"
)

// Daily percolation rate assumed when the soil rasters have not been loaded,
// typical of a puddled paddy soil.
const defaultPercolationMMDay = 2.0

// RunSensitivity computes the threshold sensitivity table for a study area
// from climate alone, without touching the terrain or soil rasters, and
// writes it to the result directory.
func RunSensitivity(areaName string) ([]waterbalance.SweepRow, string, error) {
	sa, err := studyarea.Get(areaName)
	if err != nil {
		return nil, "", err
	}
	if err := sa.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration for %s: %w", areaName, err)
	}

	series, err := BuildWaterBalanceSeries(sa, defaultPercolationMMDay)
	if err != nil {
		return nil, "", err
	}

	window := waterbalance.DefaultWindow(sa.SeasonStartDekad, sa.SeasonEndDekad)
	rows, err := waterbalance.SensitivitySweep(series, window, sa.DeficitThresholdsMM)
	if err != nil {
		return nil, "", err
	}

	resultDir := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(resultDir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create result directory: %w", err)
	}
	resultPath := filepath.Join(resultDir, areaName+"_sensitivity.csv")
	if err := writeCSV(resultPath, &rows); err != nil {
		return nil, "", err
	}
	return rows, resultPath, nil
}
