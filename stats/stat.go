// Package stats provides reusable numeric routines for time series analysis.
package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Autocorrelation computes the sample autocorrelation of values at the given
// lag. All lags share a single denominator, the total sum of squared
// deviations, so results are only approximately bounded by [-1, 1]. Returns 0
// when the lag is out of range or the series has no variance.
func Autocorrelation(values []float64, lag int) float64 {
	n := len(values)
	if lag < 0 || lag >= n {
		return 0
	}

	mean := stat.Mean(values, nil)

	var denom float64
	for _, v := range values {
		d := v - mean
		denom += d * d
	}
	if denom == 0 {
		return 0
	}

	var num float64
	for i := 0; i+lag < n; i++ {
		num += (values[i+lag] - mean) * (values[i] - mean)
	}
	return num / denom
}

// ACF computes autocorrelations for lags 0 through maxLag. maxLag is capped
// at len(values)-1. Returns nil for an empty series.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if n == 0 || maxLag < 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}
	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		acf[k] = Autocorrelation(values, k)
	}
	return acf
}
