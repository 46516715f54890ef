package studyarea

import (
	"fmt"
	"sort"

	"github.com/agrowatch/awd-atlas-cli/internal/biophys"
	"github.com/agrowatch/awd-atlas-cli/internal/cost"
)

// StudyArea bundles the per-region configuration of one assessment run.
// BoundingBox is [min lon, min lat, max lon, max lat].
type StudyArea struct {
	Name                string
	BoundingBox         [4]float64
	Year                int
	SeasonStartDekad    int
	SeasonEndDekad      int
	DeficitThresholdsMM []float64
	SlopeThresholdDeg   float64
	DrainageThreshold   int
	CellSizeMeters      float64
	BaseCostPerKm2      float64
	Regions             map[int]string
}

// Catalog lists the built-in study areas. Raster inputs for an area live
// under data/rasters/<name>/.
var Catalog = map[string]StudyArea{
	"vietnam": {
		Name:                "vietnam",
		BoundingBox:         [4]float64{104.5, 8.5, 106.8, 11.0},
		Year:                2023,
		SeasonStartDekad:    13, // early May
		SeasonEndDekad:      27, // late September
		DeficitThresholdsMM: []float64{-30, -40, -50, -60, -70},
		SlopeThresholdDeg:   biophys.DefaultSlopeThresholdDeg,
		DrainageThreshold:   biophys.DefaultDrainageThreshold,
		CellSizeMeters:      30,
		BaseCostPerKm2:      cost.DefaultBaseCostPerKm2,
		Regions: map[int]string{
			1: "Mekong Delta",
			2: "Red River Delta",
			3: "Central",
		},
	},
	"japan": {
		Name:                "japan",
		BoundingBox:         [4]float64{129.5, 31.0, 142.0, 45.5},
		Year:                2023,
		SeasonStartDekad:    13,
		SeasonEndDekad:      27,
		DeficitThresholdsMM: []float64{-30, -40, -50, -60, -70},
		SlopeThresholdDeg:   biophys.DefaultSlopeThresholdDeg,
		DrainageThreshold:   biophys.DefaultDrainageThreshold,
		CellSizeMeters:      30,
		BaseCostPerKm2:      cost.DefaultBaseCostPerKm2,
		Regions: map[int]string{
			1: "Kanto",
			2: "Tohoku",
			3: "Kyushu",
			4: "Hokkaido",
		},
	},
}

// Get looks a study area up by name.
func Get(name string) (StudyArea, error) {
	sa, ok := Catalog[name]
	if !ok {
		return StudyArea{}, fmt.Errorf("studyarea: unknown study area %q", name)
	}
	return sa, nil
}

// Names lists the catalog alphabetically.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Centroid returns the bounding box center as (lat, lon), the point climate
// series are fetched for.
func (sa StudyArea) Centroid() (float64, float64) {
	return (sa.BoundingBox[1] + sa.BoundingBox[3]) / 2, (sa.BoundingBox[0] + sa.BoundingBox[2]) / 2
}

// ValidateBoundingBox checks a [min lon, min lat, max lon, max lat] box.
func ValidateBoundingBox(bbox [4]float64) error {
	minLon, minLat, maxLon, maxLat := bbox[0], bbox[1], bbox[2], bbox[3]
	if minLon < -180 || minLon > 180 || maxLon < -180 || maxLon > 180 {
		return fmt.Errorf("studyarea: longitude values must be between -180 and 180")
	}
	if minLat < -90 || minLat > 90 || maxLat < -90 || maxLat > 90 {
		return fmt.Errorf("studyarea: latitude values must be between -90 and 90")
	}
	if minLon >= maxLon {
		return fmt.Errorf("studyarea: min longitude %g must be less than max longitude %g", minLon, maxLon)
	}
	if minLat >= maxLat {
		return fmt.Errorf("studyarea: min latitude %g must be less than max latitude %g", minLat, maxLat)
	}
	return nil
}

// Validate checks every configuration scalar before a run starts, so the
// pipeline fails fast instead of partway through.
func (sa StudyArea) Validate() error {
	if err := ValidateBoundingBox(sa.BoundingBox); err != nil {
		return err
	}
	if sa.SeasonStartDekad < 1 || sa.SeasonStartDekad > 36 || sa.SeasonEndDekad < 1 || sa.SeasonEndDekad > 36 {
		return fmt.Errorf("studyarea: season dekads must be between 1 and 36, got %d-%d",
			sa.SeasonStartDekad, sa.SeasonEndDekad)
	}
	if sa.SeasonEndDekad <= sa.SeasonStartDekad {
		return fmt.Errorf("studyarea: season end dekad %d must be after start dekad %d",
			sa.SeasonEndDekad, sa.SeasonStartDekad)
	}
	if len(sa.DeficitThresholdsMM) == 0 {
		return fmt.Errorf("studyarea: at least one deficit threshold is required")
	}
	for _, t := range sa.DeficitThresholdsMM {
		if t >= 0 {
			return fmt.Errorf("studyarea: deficit thresholds must be negative, got %g", t)
		}
	}
	if sa.SlopeThresholdDeg < 0 || sa.SlopeThresholdDeg > 90 {
		return fmt.Errorf("studyarea: slope threshold must be between 0 and 90 degrees, got %g", sa.SlopeThresholdDeg)
	}
	if sa.DrainageThreshold < biophys.DrainageWell || sa.DrainageThreshold > biophys.DrainagePoor {
		return fmt.Errorf("studyarea: drainage threshold must be between %d and %d, got %d",
			biophys.DrainageWell, biophys.DrainagePoor, sa.DrainageThreshold)
	}
	if sa.CellSizeMeters <= 0 {
		return fmt.Errorf("studyarea: cell size must be positive, got %g", sa.CellSizeMeters)
	}
	if sa.BaseCostPerKm2 <= 0 {
		return fmt.Errorf("studyarea: base cost must be positive, got %g", sa.BaseCostPerKm2)
	}
	return nil
}
