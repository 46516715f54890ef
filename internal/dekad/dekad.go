package dekad

import (
	"fmt"
	"time"
)

// Total is the summed value of one 10-day bucket. Date is the first daily
// date that fell into the bucket.
type Total struct {
	Date  time.Time
	Value float64
}

// DaysPerDekad is the nominal bucket length used when converting daily rates
// to dekad totals. The third bucket of a month actually holds 8-11 days.
const DaysPerDekad = 10

func bucketID(day int) int {
	id := ((day - 1) / 10) + 1
	if id > 3 {
		id = 3
	}
	return id
}

// Aggregate sums a daily series into calendar-month-relative 10-day buckets.
// Bucket 1 covers days 1-10, bucket 2 days 11-20 and bucket 3 the remainder
// of the month. Output order follows the first occurrence of each bucket in
// the input, so a chronological input yields a chronological output. An empty
// input yields an empty result.
func Aggregate(dates []time.Time, values []float64) ([]Total, error) {
	if len(dates) != len(values) {
		return nil, fmt.Errorf("dekad: %d dates but %d values", len(dates), len(values))
	}

	totals := []Total{}
	index := make(map[string]int)
	for i, d := range dates {
		key := fmt.Sprintf("%s-D%d", d.Format("2006-01"), bucketID(d.Day()))
		at, ok := index[key]
		if !ok {
			index[key] = len(totals)
			totals = append(totals, Total{Date: d, Value: values[i]})
			continue
		}
		totals[at].Value += values[i]
	}
	return totals, nil
}

// ForDayOfYear converts a day of year to the annual dekad number (1-36).
func ForDayOfYear(dayOfYear int) (int, error) {
	if dayOfYear < 1 || dayOfYear > 366 {
		return 0, fmt.Errorf("dekad: day of year must be between 1 and 366, got %d", dayOfYear)
	}
	d := (dayOfYear-1)/10 + 1
	if d > 36 {
		d = 36
	}
	return d, nil
}

// PercolationTotal converts a daily percolation rate to a dekad total.
func PercolationTotal(ratePerDayMM float64) float64 {
	return ratePerDayMM * DaysPerDekad
}

// ApplyMinimumIrrigation floors each dekad rainfall total at thresholdMM,
// modeling supplemental irrigation that keeps the field from drying out
// completely in rainless dekads.
func ApplyMinimumIrrigation(rainfallMM []float64, thresholdMM float64) []float64 {
	out := make([]float64, len(rainfallMM))
	for i, v := range rainfallMM {
		if v < thresholdMM {
			out[i] = thresholdMM
		} else {
			out[i] = v
		}
	}
	return out
}
