package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeries(t *testing.T, y []float64) *Series {
	t.Helper()
	return &Series{
		T: GenerateT(len(y), 24*time.Hour, time.Now),
		Y: y,
	}
}

func TestEstimateTrend(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		expected TrendResult
	}{
		"clean increasing line": {
			y: []float64{10, 12, 14, 16},
			expected: TrendResult{
				Slope:      2,
				Intercept:  10,
				RSquared:   1,
				Direction:  TrendIncreasing,
				Strength:   TrendStrong,
				DataPoints: 4,
				StartValue: 10,
				EndValue:   16,
			},
		},
		"clean decreasing line": {
			y: []float64{9, 6, 3, 0},
			expected: TrendResult{
				Slope:      -3,
				Intercept:  9,
				RSquared:   1,
				Direction:  TrendDecreasing,
				Strength:   TrendStrong,
				DataPoints: 4,
				StartValue: 9,
				EndValue:   0,
			},
		},
		"constant series": {
			y: []float64{5, 5, 5, 5, 5},
			expected: TrendResult{
				Slope:      0,
				Intercept:  5,
				RSquared:   0,
				Direction:  TrendStable,
				Strength:   TrendWeak,
				DataPoints: 5,
				StartValue: 5,
				EndValue:   5,
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := EstimateTrend(newTestSeries(t, td.y))
			require.NoError(t, err)
			assert.InDelta(t, td.expected.Slope, res.Slope, 1e-9)
			assert.InDelta(t, td.expected.Intercept, res.Intercept, 1e-9)
			assert.InDelta(t, td.expected.RSquared, res.RSquared, 1e-9)
			assert.Equal(t, td.expected.Direction, res.Direction)
			assert.Equal(t, td.expected.Strength, res.Strength)
			assert.Equal(t, td.expected.DataPoints, res.DataPoints)
			assert.Equal(t, td.expected.StartValue, res.StartValue)
			assert.Equal(t, td.expected.EndValue, res.EndValue)
		})
	}
}

func TestEstimateTrendStrengthScaleInvariance(t *testing.T) {
	base := GenerateNoise(GenerateLineY(50, 0, 0.001), 1.0)

	scaled := make([]float64, len(base))
	for i, v := range base {
		scaled[i] = v * 1000
	}

	resBase, err := EstimateTrend(newTestSeries(t, base))
	require.NoError(t, err)
	resScaled, err := EstimateTrend(newTestSeries(t, scaled))
	require.NoError(t, err)

	// strength compares the slope against the series' own spread, so a
	// uniform rescale must not change the label
	assert.Equal(t, resBase.Strength, resScaled.Strength)
}

func TestEstimateTrendInsufficientData(t *testing.T) {
	_, err := EstimateTrend(newTestSeries(t, []float64{1}))
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = EstimateTrend(newTestSeries(t, nil))
	assert.ErrorIs(t, err, ErrInsufficientData)
}
