package delivery

import (
	"github.com/agrowatch/awd-atlas-cli/internal/spatial"
)

// AreaComparison relates the fragmentation of two study areas (B over A).
type AreaComparison struct {
	AreaA      string
	AreaB      string
	SummaryA   spatial.Summary
	SummaryB   spatial.Summary
	Comparison spatial.Comparison
}

// CompareAreas runs the full assessment for both areas and compares their
// fragmentation summaries.
func CompareAreas(areaA, areaB string) (*AreaComparison, error) {
	resA, err := RunAssessment(areaA)
	if err != nil {
		return nil, err
	}
	resB, err := RunAssessment(areaB)
	if err != nil {
		return nil, err
	}

	return &AreaComparison{
		AreaA:      areaA,
		AreaB:      areaB,
		SummaryA:   resA.Summary,
		SummaryB:   resB.Summary,
		Comparison: spatial.Compare(resA.Summary, resB.Summary),
	}, nil
}
