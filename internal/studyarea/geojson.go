package studyarea

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrowatch/awd-atlas-cli/internal/properties"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// BoundaryCentroid reads a study area's boundary GeoJSON from
// data/geojsons/<name>.geojson and returns its centroid as (lat, lon). When
// a boundary file exists it gives a better climate sampling point than the
// bounding box center.
func BoundaryCentroid(name string) (float64, float64, error) {
	path := filepath.Join(properties.RootPath(), "data", "geojsons", name+".geojson")
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read boundary file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse boundary geojson: %w", err)
	}
	if len(fc.Features) == 0 {
		return 0, 0, errors.New("boundary geojson has no features")
	}

	centroid, area := planar.CentroidArea(fc.Features[0].Geometry)
	if area <= 0 {
		return 0, 0, errors.New("boundary geometry has no area")
	}
	return centroid.Y(), centroid.X(), nil
}
