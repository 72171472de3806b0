package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPeriodCandidates(t *testing.T) {
	testData := map[string]struct {
		period int
		n      int
	}{
		"weekly":  {period: 7, n: 70},
		"monthly": {period: 12, n: 96},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			y := GenerateWaveY(td.n, 100, 10, td.period)
			assert.Equal(t, td.period, DetectPeriod(y))
		})
	}
}

func TestDetectPeriodNone(t *testing.T) {
	testData := map[string]struct {
		y []float64
	}{
		"constant":  {y: GenerateConstY(40, 3.0)},
		"too short": {y: []float64{1, 2, 1}},
		"pure line": {y: GenerateLineY(13, 0, 1)},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0, DetectPeriod(td.y))
		})
	}
}

func TestDetectPeriodAutocorrelationFallback(t *testing.T) {
	// period 5 is not on the candidate list; keep the series short enough
	// that no listed candidate can validate, forcing the peak scan
	y := GenerateWaveY(14, 0, 1, 5)
	assert.Equal(t, 5, DetectPeriod(y))
}

func TestValidPeriod(t *testing.T) {
	wave := GenerateWaveY(70, 100, 10, 7)
	assert.True(t, validPeriod(wave, 7))

	// an odd period over an alternating series mixes both levels into every
	// phase, so bucketing concentrates nothing
	alternating := make([]float64, 70)
	for i := range alternating {
		alternating[i] = float64(1 + i%2)
	}
	assert.False(t, validPeriod(alternating, 7))

	assert.False(t, validPeriod(wave, 40))
}

func TestSeasonalStrength(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		period   int
		expected SeasonalStrength
	}{
		"pure wave concentrates in phases": {
			y:        GenerateWaveY(70, 100, 10, 7),
			period:   7,
			expected: SeasonalWeak,
		},
		"noisy non-periodic data": {
			y:        GenerateNoise(GenerateConstY(70, 50), 5),
			period:   7,
			expected: SeasonalStrong,
		},
		"short series": {
			y:        GenerateWaveY(10, 0, 1, 7),
			period:   7,
			expected: SeasonalInsufficientData,
		},
		"flat series": {
			y:        GenerateConstY(30, 2),
			period:   7,
			expected: SeasonalNoVariation,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, seasonalStrength(td.y, td.period))
		})
	}
}

func TestSeasonalProfile(t *testing.T) {
	period := 4
	y := []float64{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4}

	phases, pattern := seasonalProfile(y, period)
	require.Len(t, phases, period)
	require.Len(t, pattern, period)

	for i, ps := range phases {
		assert.InDelta(t, float64(i+1), ps.Mean, 1e-12)
		assert.InDelta(t, 0, ps.Std, 1e-12)
		assert.Equal(t, 3, ps.Count)
		assert.Equal(t, ps.Mean, pattern[i])
	}
}

func TestSeasonalProfileUnevenPhases(t *testing.T) {
	// 10 samples at period 4: phases 0 and 1 hold 3 samples, 2 and 3 hold 2
	y := []float64{1, 2, 3, 4, 1, 2, 3, 4, 1, 2}
	phases, _ := seasonalProfile(y, 4)
	require.Len(t, phases, 4)
	assert.Equal(t, 3, phases[0].Count)
	assert.Equal(t, 3, phases[1].Count)
	assert.Equal(t, 2, phases[2].Count)
	assert.Equal(t, 2, phases[3].Count)
}
