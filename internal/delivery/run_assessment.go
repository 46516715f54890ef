package delivery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrowatch/awd-atlas-cli/internal/biophys"
	"github.com/agrowatch/awd-atlas-cli/internal/cost"
	"github.com/agrowatch/awd-atlas-cli/internal/grid"
	"github.com/agrowatch/awd-atlas-cli/internal/properties"
	"github.com/agrowatch/awd-atlas-cli/internal/raster"
	"github.com/agrowatch/awd-atlas-cli/internal/spatial"
	"github.com/agrowatch/awd-atlas-cli/internal/studyarea"
	"github.com/agrowatch/awd-atlas-cli/internal/waterbalance"
	"github.com/agrowatch/awd-atlas-cli/output"
	"github.com/schollz/progressbar/v3"
)

// DefaultMinClusterSize filters out patches too small to target with an
// extension program.
const DefaultMinClusterSize = 100

// AssessmentResult collects everything one study area run produces.
type AssessmentResult struct {
	Area            studyarea.StudyArea
	Sweep           []waterbalance.SweepRow
	SlopeFeasible   *grid.Bool
	DrainageClass   *grid.Int
	Percolation     *grid.Float
	WBClass         *grid.Int
	Feasible        *grid.Bool
	Importance      []biophys.ImportanceRow
	Labeled         *grid.Int
	PatchCount      int
	Summary         spatial.Summary
	Clusters        []spatial.ClusterRow
	Regional        []spatial.RegionRow
	SuitableAreaKm2 float64
	ExtensionCost   float64
}

func rasterPath(area, name string) string {
	return filepath.Join(properties.RootPath(), "data", "rasters", area, name)
}

// RunAssessment executes the full feasibility pipeline for one study area:
// biophysical constraints from the soil and terrain rasters, the dekad water
// balance sensitivity sweep from the climate archive, composite feasibility,
// fragmentation analysis and the extension cost estimate.
func RunAssessment(areaName string) (*AssessmentResult, error) {
	sa, err := studyarea.Get(areaName)
	if err != nil {
		return nil, err
	}
	if err := sa.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", areaName, err)
	}

	bar := progressbar.Default(7, "Running assessment")
	res := &AssessmentResult{Area: sa}

	// Terrain.
	dem, err := raster.LoadBand(rasterPath(areaName, "dem.tif"))
	if err != nil {
		return nil, err
	}
	cellSize, err := raster.CellSizeMeters(rasterPath(areaName, "dem.tif"))
	if err != nil || cellSize <= 0 {
		cellSize = sa.CellSizeMeters
	}
	res.SlopeFeasible, err = biophys.SlopeFeasible(dem, cellSize, sa.SlopeThresholdDeg)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	// Soil.
	clay, err := raster.LoadBand(rasterPath(areaName, "clay.tif"))
	if err != nil {
		return nil, err
	}
	sand, err := raster.LoadBand(rasterPath(areaName, "sand.tif"))
	if err != nil {
		return nil, err
	}
	res.DrainageClass, res.Percolation, err = biophys.DrainageClass(clay, sand)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	// Climate: annual dekad water balance at the area centroid, with the
	// area-mean percolation rate, swept over the deficit thresholds.
	series, err := BuildWaterBalanceSeries(sa, biophys.MeanPercolation(res.Percolation))
	if err != nil {
		return nil, err
	}
	window := waterbalance.DefaultWindow(sa.SeasonStartDekad, sa.SeasonEndDekad)
	res.Sweep, err = waterbalance.SensitivitySweep(series, window, sa.DeficitThresholdsMM)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	// Upstream per-pixel water balance suitability classes.
	res.WBClass, err = raster.LoadClassBand(rasterPath(areaName, "wb_class.tif"))
	if err != nil {
		return nil, err
	}
	res.Feasible, err = biophys.CompositeFeasibility(res.SlopeFeasible, res.DrainageClass, res.WBClass, sa.DrainageThreshold)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	drainageOK, err := biophys.DrainageFeasible(res.DrainageClass, sa.DrainageThreshold)
	if err != nil {
		return nil, err
	}
	res.Importance, err = biophys.ConstraintImportance(res.SlopeFeasible, drainageOK, biophys.WaterBalanceFeasible(res.WBClass))
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	// Fragmentation and cost.
	res.Labeled, res.PatchCount = spatial.ExtractPatches(res.Feasible)
	res.Summary = spatial.Summarize(res.Labeled, res.PatchCount)
	if res.PatchCount == 0 {
		fmt.Printf("Warning: no suitable patches found for %s\n", areaName)
	}
	res.Clusters = spatial.Clusters(res.Feasible, DefaultMinClusterSize)
	res.SuitableAreaKm2 = float64(res.Summary.TotalSuitableCells) * cellSize * cellSize / 1e6
	res.ExtensionCost, err = cost.Estimate(res.Summary.FragmentationIndex, res.SuitableAreaKm2, sa.BaseCostPerKm2)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	// Regional breakdown when a region-id raster is present.
	regionFile := rasterPath(areaName, "regions.tif")
	if _, statErr := os.Stat(regionFile); statErr == nil {
		regionGrid, err := raster.LoadClassBand(regionFile)
		if err != nil {
			return nil, err
		}
		res.Regional, err = spatial.RegionalStatistics(res.Feasible, regionGrid, sa.Regions)
		if err != nil {
			return nil, err
		}
	}
	bar.Add(1)
	bar.Finish()

	return res, nil
}

// SaveAssessment writes tables and map images to data/result/<area>/.
func SaveAssessment(res *AssessmentResult) (string, error) {
	resultDir := filepath.Join(properties.RootPath(), "data", "result", res.Area.Name)
	if err := os.MkdirAll(resultDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create result directory: %w", err)
	}

	if err := writeCSV(filepath.Join(resultDir, "sensitivity.csv"), &res.Sweep); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(resultDir, "constraint_importance.csv"), &res.Importance); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(resultDir, "clusters.csv"), &res.Clusters); err != nil {
		return "", err
	}
	summaryRows := []spatial.Summary{res.Summary}
	if err := writeCSV(filepath.Join(resultDir, "fragmentation.csv"), &summaryRows); err != nil {
		return "", err
	}
	if len(res.Regional) > 0 {
		if err := writeCSV(filepath.Join(resultDir, "regional_stats.csv"), &res.Regional); err != nil {
			return "", err
		}
	}

	if err := output.CreateFeasibilityImage(res.Feasible, filepath.Join(resultDir, "feasibility.png")); err != nil {
		return "", err
	}
	if err := output.CreatePatchImage(res.Labeled, res.PatchCount, filepath.Join(resultDir, "patches.png")); err != nil {
		return "", err
	}
	if err := output.CreateClassImage(res.WBClass, filepath.Join(resultDir, "wb_class.png")); err != nil {
		return "", err
	}

	return resultDir, nil
}
