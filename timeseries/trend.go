package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// thresholds tying trend strength to the series' own spread
const (
	strongSlopeFactor   = 0.10
	moderateSlopeFactor = 0.05
)

// EstimateTrend fits an ordinary least squares line of value against ordinal
// index and classifies its direction and strength. Needs at least 2 points.
func EstimateTrend(s *Series) (*TrendResult, error) {
	n := s.Len()
	if n < 2 {
		return nil, fmt.Errorf("have %d points, need at least 2, %w", n, ErrInsufficientData)
	}

	slope, intercept := olsLine(s.Y)

	// coefficient of determination against the fitted line
	var ssRes, ssTot float64
	mean := stat.Mean(s.Y, nil)
	for i, y := range s.Y {
		pred := slope*float64(i) + intercept
		ssRes += (y - pred) * (y - pred)
		ssTot += (y - mean) * (y - mean)
	}
	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}

	direction := TrendStable
	if slope > 0 {
		direction = TrendIncreasing
	} else if slope < 0 {
		direction = TrendDecreasing
	}

	std := stat.PopStdDev(s.Y, nil)
	absSlope := slope
	if absSlope < 0 {
		absSlope = -absSlope
	}
	strength := TrendWeak
	switch {
	case absSlope > std*strongSlopeFactor:
		strength = TrendStrong
	case absSlope > std*moderateSlopeFactor:
		strength = TrendModerate
	}

	return &TrendResult{
		Slope:      slope,
		Intercept:  intercept,
		RSquared:   rSquared,
		Direction:  direction,
		Strength:   strength,
		DataPoints: n,
		StartValue: s.Y[0],
		EndValue:   s.Y[n-1],
	}, nil
}

// olsLine computes the closed-form least squares slope and intercept of y
// against its ordinal index 0..n-1.
func olsLine(y []float64) (slope, intercept float64) {
	n := float64(len(y))
	var sumX, sumY, sumXY, sumX2 float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumX2 += x * x
	}
	slope = (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
