package climate

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// DailyRecord is one row of a pre-exported daily climate CSV.
type DailyRecord struct {
	Date       string  `csv:"date"`
	RainfallMM float64 `csv:"rainfall_mm"`
	PETMM      float64 `csv:"pet_mm"`
}

// LoadDailyCSV reads a daily climate file into a History. Rows must carry
// ISO dates; values are in mm.
func LoadDailyCSV(path string) (History, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open climate file: %w", err)
	}
	defer file.Close()

	var records []DailyRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("failed to read climate file %s: %w", path, err)
	}

	history := History{}
	for _, rec := range records {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date %q in %s: %w", rec.Date, path, err)
		}
		history[date] = Daily{Rainfall: rec.RainfallMM, PET: rec.PETMM}
	}
	return history, nil
}
