package timeseries

import (
	"math"
	"math/rand/v2"
	"time"
)

// GenerateT builds n evenly spaced timestamps ending near nowFunc().
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) TimeSlice {
	t := make(TimeSlice, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).Add(-time.Duration(n) * interval)
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

// GenerateConstY builds a constant series of length n.
func GenerateConstY(n int, val float64) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = val
	}
	return y
}

// GenerateWaveY builds base + amp*sin(2*pi*i/period) over n ordinal indices.
func GenerateWaveY(n int, base, amp float64, period int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = base + amp*math.Sin(2.0*math.Pi*float64(i)/float64(period))
	}
	return y
}

// GenerateLineY builds intercept + slope*i over n ordinal indices.
func GenerateLineY(n int, intercept, slope float64) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = intercept + slope*float64(i)
	}
	return y
}

// GenerateNoise adds gaussian noise with the given scale to a copy of y.
func GenerateNoise(y []float64, scale float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = v + rand.NormFloat64()*scale
	}
	return out
}
