package timeseries

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ChimdumebiNebolisa/datuum2.0/stats"
)

// candidatePeriods are tried before falling back to an autocorrelation scan.
// Roughly: weekly, yearly-monthly, daily-hourly, monthly-daily, yearly-daily.
var candidatePeriods = []int{7, 12, 24, 30, 365}

const (
	// a candidate validates when mean within-phase variance drops below
	// this share of total variance
	phaseVarianceRatio = 0.8
	// minimum autocorrelation for a scanned lag to count as a period
	acfPeakThreshold = 0.3
	maxScanLag       = 50
)

// DetectPeriod determines the most plausible seasonal period, in samples.
// Candidate periods are tried first in order; failing that, the first interior
// autocorrelation peak above the significance threshold wins. Returns 0 when
// no seasonality is detected.
func DetectPeriod(values []float64) int {
	for _, period := range candidatePeriods {
		if len(values) >= period*2 && validPeriod(values, period) {
			return period
		}
	}

	maxLag := min(maxScanLag, len(values)/2)
	if maxLag < 2 {
		return 0
	}
	acf := make([]float64, 0, maxLag-1)
	for lag := 1; lag < maxLag; lag++ {
		acf = append(acf, stats.Autocorrelation(values, lag))
	}
	for i := 1; i < len(acf)-1; i++ {
		if acf[i] > acf[i-1] && acf[i] > acf[i+1] && acf[i] > acfPeakThreshold {
			return i + 1
		}
	}
	return 0
}

// validPeriod checks that bucketing by phase concentrates the series: the
// mean within-phase variance must fall below 80% of total variance.
func validPeriod(values []float64, period int) bool {
	if len(values) < period*2 {
		return false
	}

	var phaseVars []float64
	for i := 0; i < period; i++ {
		phase := phaseValues(values, i, period)
		if len(phase) > 1 {
			phaseVars = append(phaseVars, stat.PopVariance(phase, nil))
		}
	}
	if len(phaseVars) == 0 {
		return false
	}

	avgPhaseVar := stat.Mean(phaseVars, nil)
	totalVar := stat.PopVariance(values, nil)
	return avgPhaseVar < totalVar*phaseVarianceRatio
}

// phaseValues gathers the samples at indices phase, phase+period, ...
func phaseValues(values []float64, phase, period int) []float64 {
	out := make([]float64, 0, len(values)/period+1)
	for i := phase; i < len(values); i += period {
		out = append(out, values[i])
	}
	return out
}

// seasonalStrength grades how much variance the phase buckets hold relative
// to the whole series.
func seasonalStrength(values []float64, period int) SeasonalStrength {
	if len(values) < period*2 {
		return SeasonalInsufficientData
	}

	var phaseVar float64
	for i := 0; i < period; i++ {
		phase := phaseValues(values, i, period)
		if len(phase) > 1 {
			phaseVar += stat.PopVariance(phase, nil)
		}
	}
	phaseVar /= float64(period)

	totalVar := stat.PopVariance(values, nil)
	if totalVar == 0 {
		return SeasonalNoVariation
	}

	ratio := phaseVar / totalVar
	switch {
	case ratio > 0.5:
		return SeasonalStrong
	case ratio > 0.2:
		return SeasonalModerate
	}
	return SeasonalWeak
}

// seasonalProfile builds the per-phase statistics and pattern for a period.
func seasonalProfile(values []float64, period int) ([]PhaseStats, []float64) {
	phases := make([]PhaseStats, 0, period)
	pattern := make([]float64, 0, period)
	for i := 0; i < period; i++ {
		phase := phaseValues(values, i, period)
		if len(phase) == 0 {
			continue
		}
		mean := stat.Mean(phase, nil)
		phases = append(phases, PhaseStats{
			Mean:  mean,
			Std:   stat.PopStdDev(phase, nil),
			Count: len(phase),
		})
		pattern = append(pattern, mean)
	}
	return phases, pattern
}
