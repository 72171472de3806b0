package timeseries

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

const (
	// MinForecastPoints is the fewest samples a forecast accepts.
	MinForecastPoints = 3

	smoothingAlpha = 0.3
	maxAvgWindow   = 3
)

// ForecastSeries projects a series horizon steps past its last observation
// using the requested strategy. Each step maps to a real timestamp via the
// modal inter-sample interval; every step carries the same in-sample residual
// error estimate.
func ForecastSeries(s *Series, horizon int, method Method) (*ForecastResult, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("horizon %d, need at least 1, %w", horizon, ErrInsufficientData)
	}
	n := s.Len()
	if n < MinForecastPoints {
		return nil, fmt.Errorf("have %d points, need at least %d, %w", n, MinForecastPoints, ErrInsufficientData)
	}

	var values []float64
	var errEstimate float64
	switch method {
	case MethodLinear:
		values, errEstimate = linearForecast(s.Y, horizon)
	case MethodExponential:
		values, errEstimate = exponentialForecast(s.Y, horizon)
	case MethodMovingAverage:
		values, errEstimate = movingAverageForecast(s.Y, horizon)
	default:
		return nil, fmt.Errorf("%q, %w", method, ErrUnknownMethod)
	}

	interval, err := s.T.EstimateFreq()
	if err != nil {
		interval = DefaultInterval
	}

	lastTime := s.T.EndTime()
	points := make([]ForecastPoint, horizon)
	for i := 0; i < horizon; i++ {
		points[i] = ForecastPoint{
			Time:  lastTime.Add(time.Duration(i+1) * interval),
			Value: values[i],
			Error: errEstimate,
		}
	}

	return &ForecastResult{
		Method:          method,
		Horizon:         horizon,
		Points:          points,
		LastActualValue: s.Y[n-1],
		LastActualTime:  lastTime,
	}, nil
}

// linearForecast extends the least squares trend line past the last ordinal
// index. The error estimate is the spread of in-sample residuals, identical
// for every step.
func linearForecast(y []float64, horizon int) ([]float64, float64) {
	n := len(y)
	slope, intercept := olsLine(y)

	forecast := make([]float64, horizon)
	for i := 0; i < horizon; i++ {
		forecast[i] = slope*float64(n+i) + intercept
	}

	residuals := make([]float64, n)
	for i, v := range y {
		residuals[i] = v - (slope*float64(i) + intercept)
	}
	return forecast, stat.PopStdDev(residuals, nil)
}

// exponentialForecast runs single exponential smoothing and holds the last
// smoothed level flat across the horizon.
func exponentialForecast(y []float64, horizon int) ([]float64, float64) {
	n := len(y)
	smoothed := make([]float64, n)
	smoothed[0] = y[0]
	for i := 1; i < n; i++ {
		smoothed[i] = smoothingAlpha*y[i] + (1-smoothingAlpha)*smoothed[i-1]
	}

	forecast := make([]float64, horizon)
	for i := range forecast {
		forecast[i] = smoothed[n-1]
	}

	residuals := make([]float64, n)
	for i := range y {
		residuals[i] = y[i] - smoothed[i]
	}
	return forecast, stat.PopStdDev(residuals, nil)
}

// movingAverageForecast holds the last windowed average flat across the
// horizon. Residuals compare each value from window-1 onward against its
// trailing average.
func movingAverageForecast(y []float64, horizon int) ([]float64, float64) {
	n := len(y)
	window := min(maxAvgWindow, n)

	avg := make([]float64, n-window+1)
	var sum float64
	for i := 0; i < window; i++ {
		sum += y[i]
	}
	avg[0] = sum / float64(window)
	for i := window; i < n; i++ {
		sum += y[i] - y[i-window]
		avg[i-window+1] = sum / float64(window)
	}

	forecast := make([]float64, horizon)
	for i := range forecast {
		forecast[i] = avg[len(avg)-1]
	}

	residuals := make([]float64, len(avg))
	for i := range avg {
		residuals[i] = y[window-1+i] - avg[i]
	}
	return forecast, stat.PopStdDev(residuals, nil)
}
