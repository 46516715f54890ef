package climate

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agrowatch/awd-atlas-cli/internal/cache"
)

type dailyResponse struct {
	Time          []string  `json:"time"`
	Precipitation []float64 `json:"precipitation_sum"`
	ET0           []float64 `json:"et0_fao_evapotranspiration"`
}

type archiveResponse struct {
	Daily dailyResponse `json:"daily"`
}

// Daily holds one day of climate forcing in mm.
type Daily struct {
	Rainfall float64
	PET      float64
}

// History is a date-indexed daily climate record.
type History map[time.Time]Daily

const archiveURL = "https://archive-api.open-meteo.com/v1/archive"

// FetchDaily retrieves daily rainfall and FAO reference evapotranspiration
// for a point from the open-meteo archive, with a local file cache so repeat
// runs stay offline. Retries transient failures with a backoff pause.
func FetchDaily(latitude, longitude float64, startDate, endDate time.Time, retries int) (History, error) {
	fc := cache.NewFileCache[History]("climate")
	cacheKey := fc.Key(latitude, longitude, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if cached, ok := fc.Get(cacheKey); ok {
		return cached, nil
	}

	params := fmt.Sprintf("?latitude=%f&longitude=%f&start_date=%s&end_date=%s&daily=precipitation_sum,et0_fao_evapotranspiration",
		latitude, longitude, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	var attempt int
	for attempt < retries {
		resp, err := http.Get(archiveURL + params)
		if err != nil {
			fmt.Printf("Failed to retrieve climate data: %v. Retrying... (%d/%d)\n", err, attempt+1, retries)
			time.Sleep(10 * time.Second)
			attempt++
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			fmt.Printf("Failed to retrieve climate data: status %d. Retrying... (%d/%d)\n", resp.StatusCode, attempt+1, retries)
			time.Sleep(10 * time.Second)
			attempt++
			continue
		}

		var archive archiveResponse
		err = json.NewDecoder(resp.Body).Decode(&archive)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse climate response: %w", err)
		}

		history := History{}
		for i, date := range archive.Daily.Time {
			parsed, err := time.Parse("2006-01-02", date)
			if err != nil {
				return nil, fmt.Errorf("failed to parse date %q: %w", date, err)
			}
			history[parsed] = Daily{
				Rainfall: archive.Daily.Precipitation[i],
				PET:      archive.Daily.ET0[i],
			}
		}

		if err := fc.Set(cacheKey, history); err != nil {
			fmt.Printf("Failed to cache climate data: %v\n", err)
		}
		return history, nil
	}

	return nil, fmt.Errorf("failed to retrieve climate data after %d attempts", retries)
}
