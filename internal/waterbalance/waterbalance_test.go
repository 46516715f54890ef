package waterbalance

import "testing"

func TestCompute(t *testing.T) {
	if got := Compute(100, 60, 20); got != 20 {
		t.Errorf("Compute(100,60,20) = %g, want 20", got)
	}
	if got := Compute(30, 50, 25); got != -45 {
		t.Errorf("Compute(30,50,25) = %g, want -45", got)
	}
}

func TestDekadSuitableBand(t *testing.T) {
	threshold := -50.0
	cases := []struct {
		wb   float64
		want bool
	}{
		{-1, true},
		{-50, true},  // closed at the deficit end
		{-50.1, false},
		{0, false}, // open at zero
		{10, false},
		{-25, true},
	}
	for _, c := range cases {
		if got := DekadSuitable(c.wb, threshold); got != c.want {
			t.Errorf("DekadSuitable(%g, %g) = %v, want %v", c.wb, threshold, got, c.want)
		}
	}
}

func TestSuitabilityFractionWindow(t *testing.T) {
	// 36-dekad year; dekads 15-23 are mildly negative, the rest positive.
	series := make([]float64, 36)
	for i := range series {
		series[i] = 10
	}
	for i := 15; i <= 23; i++ {
		series[i] = -30
	}

	w := DefaultWindow(13, 27) // active window = [15, 26]
	res := SuitabilityFraction(series, w, -50)
	if res.Degenerate {
		t.Fatal("window should not be degenerate")
	}
	if res.NumTotal != 12 {
		t.Errorf("active window length = %d, want 12", res.NumTotal)
	}
	if res.NumSuitable != 9 {
		t.Errorf("suitable dekads = %d, want 9", res.NumSuitable)
	}
	if got, want := res.Fraction, 9.0/12.0; got != want {
		t.Errorf("fraction = %g, want %g", got, want)
	}
}

func TestSuitabilityFractionMonotoneInThreshold(t *testing.T) {
	// One deep-deficit dekad at -60mm. A -50mm threshold excludes it,
	// widening to -70mm includes it.
	series := make([]float64, 10)
	series[5] = -60

	w := SeasonWindow{StartDekad: 5, EndDekad: 7, ExcludeFirst: 0, ExcludeLast: 1} // active = [5, 6]
	strict := SuitabilityFraction(series, w, -50)
	loose := SuitabilityFraction(series, w, -70)
	if strict.NumSuitable != 0 {
		t.Errorf("threshold -50 should exclude the -60mm dekad, got %d suitable", strict.NumSuitable)
	}
	if loose.NumSuitable != 1 {
		t.Errorf("threshold -70 should include the -60mm dekad, got %d suitable", loose.NumSuitable)
	}
	if strict.Fraction > loose.Fraction {
		t.Errorf("fraction must not shrink as the band widens: %g > %g", strict.Fraction, loose.Fraction)
	}
}

func TestSuitabilityFractionDegenerate(t *testing.T) {
	series := make([]float64, 36)

	// Exclusions consume the whole window.
	res := SuitabilityFraction(series, SeasonWindow{StartDekad: 10, EndDekad: 12, ExcludeFirst: 2, ExcludeLast: 1}, -50)
	if !res.Degenerate {
		t.Error("expected degenerate window")
	}
	if res.Fraction != 0 || res.NumSuitable != 0 || res.NumTotal != 0 {
		t.Errorf("degenerate result should be all zero, got %+v", res)
	}

	// Empty series.
	res = SuitabilityFraction(nil, DefaultWindow(13, 27), -50)
	if !res.Degenerate {
		t.Error("expected degenerate result for empty series")
	}
}

func TestClassifyBreakpoints(t *testing.T) {
	cases := []struct {
		fraction float64
		want     int
	}{
		{0.0, ClassLow},
		{0.32, ClassLow},
		{0.33, ClassModerate},
		{0.5, ClassModerate},
		{0.66, ClassHigh},
		{1.0, ClassHigh},
	}
	for _, c := range cases {
		got, err := Classify(c.fraction, DefaultHighThreshold, DefaultModerateThreshold)
		if err != nil {
			t.Errorf("Classify(%g): unexpected error %v", c.fraction, err)
			continue
		}
		if got != c.want {
			t.Errorf("Classify(%g) = %d, want %d", c.fraction, got, c.want)
		}
	}
}

func TestClassifyMonotone(t *testing.T) {
	prev := 0
	for f := 0.0; f <= 1.0; f += 0.01 {
		class, err := Classify(f, DefaultHighThreshold, DefaultModerateThreshold)
		if err != nil {
			t.Fatalf("Classify(%g): %v", f, err)
		}
		if class < prev {
			t.Fatalf("class decreased from %d to %d at fraction %g", prev, class, f)
		}
		prev = class
	}
}

func TestClassifyRejectsOutOfRange(t *testing.T) {
	for _, f := range []float64{-0.1, 1.1, 2} {
		if _, err := Classify(f, DefaultHighThreshold, DefaultModerateThreshold); err == nil {
			t.Errorf("Classify(%g) should error", f)
		}
	}
}

func TestSensitivitySweep(t *testing.T) {
	series := make([]float64, 36)
	for i := range series {
		series[i] = 10
	}
	for i := 15; i <= 20; i++ {
		series[i] = -45
	}
	for i := 21; i <= 23; i++ {
		series[i] = -65
	}

	w := DefaultWindow(13, 27) // active = [15, 26], 12 dekads
	thresholds := []float64{-30, -50, -70}
	rows, err := SensitivitySweep(series, w, thresholds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(thresholds) {
		t.Fatalf("expected %d rows, got %d", len(thresholds), len(rows))
	}

	// Rows follow input order.
	for i, row := range rows {
		if row.ThresholdMM != thresholds[i] {
			t.Errorf("row %d threshold = %g, want %g", i, row.ThresholdMM, thresholds[i])
		}
		if row.PercentageSuitable != row.FractionSuitable*100 {
			t.Errorf("row %d percentage = %g, fraction = %g", i, row.PercentageSuitable, row.FractionSuitable)
		}
	}

	// -30 excludes everything, -50 admits the six -45 dekads, -70 all nine.
	if rows[0].NumSuitableDekads != 0 {
		t.Errorf("threshold -30: suitable = %d, want 0", rows[0].NumSuitableDekads)
	}
	if rows[1].NumSuitableDekads != 6 {
		t.Errorf("threshold -50: suitable = %d, want 6", rows[1].NumSuitableDekads)
	}
	if rows[2].NumSuitableDekads != 9 {
		t.Errorf("threshold -70: suitable = %d, want 9", rows[2].NumSuitableDekads)
	}

	// Fractions widen monotonically with the band.
	for i := 1; i < len(rows); i++ {
		if rows[i].FractionSuitable < rows[i-1].FractionSuitable {
			t.Errorf("fraction shrank between thresholds %g and %g", rows[i-1].ThresholdMM, rows[i].ThresholdMM)
		}
	}
}

func TestSensitivitySweepRejectsNonNegative(t *testing.T) {
	if _, err := SensitivitySweep(make([]float64, 36), DefaultWindow(13, 27), []float64{-50, 0}); err == nil {
		t.Error("expected error for a non-negative threshold")
	}
}
