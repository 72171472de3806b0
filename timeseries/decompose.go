package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// MinDecompositionPoints is the fewest samples a decomposition accepts.
	MinDecompositionPoints = 12
	maxTrendWindow         = 7
)

// Decompose splits a series into trend, seasonal, and residual components.
// The trend is a centered moving average with an adaptive window, the
// seasonal component broadcasts per-phase means of the detrended series, and
// the residual is whatever the chosen model leaves over. Component slices are
// index-aligned with the input.
func Decompose(s *Series, model DecompositionModel) (*Decomposition, error) {
	if model != ModelAdditive && model != ModelMultiplicative {
		return nil, fmt.Errorf("%q, %w", model, ErrUnknownModel)
	}
	n := s.Len()
	if n < MinDecompositionPoints {
		return nil, fmt.Errorf("have %d points, need at least %d, %w", n, MinDecompositionPoints, ErrInsufficientData)
	}

	values := make([]float64, n)
	copy(values, s.Y)

	window := min(maxTrendWindow, n/4)
	if window < 1 {
		window = 1
	}
	trend := centeredMovingAverage(values, window)

	detrended := make([]float64, n)
	floats.SubTo(detrended, values, trend)

	period := DetectPeriod(values)
	seasonal := make([]float64, n)
	if period > 0 && period < n/2 {
		for i := 0; i < period; i++ {
			phase := phaseValues(detrended, i, period)
			if len(phase) == 0 {
				continue
			}
			mean := stat.Mean(phase, nil)
			for j := i; j < n; j += period {
				seasonal[j] = mean
			}
		}
	}

	residual := make([]float64, n)
	switch model {
	case ModelAdditive:
		for i := range residual {
			residual[i] = values[i] - trend[i] - seasonal[i]
		}
	case ModelMultiplicative:
		// literal heuristic: seasonal is zero-centered, so shift by 1
		// to keep the product away from zero
		for i := range residual {
			residual[i] = values[i] / (trend[i] * (seasonal[i] + 1))
		}
	}

	return &Decomposition{
		Model:             model,
		Original:          values,
		Trend:             trend,
		Seasonal:          seasonal,
		Residual:          residual,
		Period:            period,
		VarianceExplained: varianceExplained(values, trend, seasonal, residual),
	}, nil
}

// centeredMovingAverage replicates a "same"-aligned convolution with a
// uniform kernel: output has the input length and edge windows are zero
// padded, so edge values attenuate instead of shrinking the window.
func centeredMovingAverage(values []float64, window int) []float64 {
	n := len(values)
	out := make([]float64, n)
	w := float64(window)
	offset := (window - 1) / 2
	for i := 0; i < n; i++ {
		center := i + offset
		lo := center - window + 1
		if lo < 0 {
			lo = 0
		}
		hi := center
		if hi > n-1 {
			hi = n - 1
		}
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		out[i] = sum / w
	}
	return out
}

func varianceExplained(values, trend, seasonal, residual []float64) VarianceExplained {
	totalVar := stat.PopVariance(values, nil)
	if totalVar == 0 {
		return VarianceExplained{}
	}
	return VarianceExplained{
		Trend:    stat.PopVariance(trend, nil) / totalVar,
		Seasonal: stat.PopVariance(seasonal, nil) / totalVar,
		Residual: stat.PopVariance(residual, nil) / totalVar,
	}
}
