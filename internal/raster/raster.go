package raster

import (
	"fmt"
	"math"
	"sync"

	"github.com/agrowatch/awd-atlas-cli/internal/grid"
	"github.com/airbusgeo/godal"
)

var registerDrivers sync.Once

func open(path string) (*godal.Dataset, error) {
	registerDrivers.Do(godal.RegisterInternalDrivers)
	ds, err := godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("gdal error %d: %s", code, msg)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to open raster %s: %w", path, err)
	}
	return ds, nil
}

// LoadBand reads band 1 of a GeoTIFF into an in-memory float grid. The
// caller is responsible for co-registration; this layer only moves bytes.
func LoadBand(path string) (*grid.Float, error) {
	ds, err := open(path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	width, height := ds.Structure().SizeX, ds.Structure().SizeY
	data := make([]float64, width*height)
	band := ds.Bands()[0]
	if err := band.Read(0, 0, data, width, height); err != nil {
		return nil, fmt.Errorf("failed to read raster data from %s: %w", path, err)
	}

	return grid.NewFloatFrom(height, width, data)
}

// LoadClassBand reads band 1 of a GeoTIFF of ordinal classes (water balance
// suitability, region ids), rounding to the nearest integer.
func LoadClassBand(path string) (*grid.Int, error) {
	f, err := LoadBand(path)
	if err != nil {
		return nil, err
	}
	cells := make([]int, len(f.Cells))
	for i, v := range f.Cells {
		cells[i] = int(math.Round(v))
	}
	return grid.NewIntFrom(f.Rows, f.Cols, cells)
}

// CellSizeMeters extracts the pixel width from the geotransform. Assumes a
// projected CRS with square pixels, which holds for the co-registered study
// area exports this tool consumes.
func CellSizeMeters(path string) (float64, error) {
	ds, err := open(path)
	if err != nil {
		return 0, err
	}
	defer ds.Close()

	gt, err := ds.GeoTransform()
	if err != nil {
		return 0, fmt.Errorf("failed to get GeoTransform for %s: %w", path, err)
	}
	size := math.Abs(gt[1])
	if size == 0 {
		return 0, fmt.Errorf("raster %s has a zero pixel size", path)
	}
	return size, nil
}
