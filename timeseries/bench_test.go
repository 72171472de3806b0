package timeseries

import (
	"os"
	"testing"
	"time"

	"github.com/pkg/profile"
)

var (
	benchForecastRes *ForecastResult
	benchDecompRes   *Decomposition
)

func benchSeries(n int) *Series {
	return &Series{
		T: GenerateT(n, time.Hour, time.Now),
		Y: GenerateNoise(GenerateWaveY(n, 100, 10, 24), 2.0),
	}
}

func BenchmarkForecastSeries(b *testing.B) {
	s := benchSeries(10000)

	var err error
	b.ResetTimer()
	if os.Getenv("DATUUM_PROFILE") != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	for b.Loop() {
		benchForecastRes, err = ForecastSeries(s, 100, MethodLinear)
		if err != nil {
			panic(err)
		}
	}
}

func BenchmarkDecompose(b *testing.B) {
	s := benchSeries(10000)

	var err error
	b.ResetTimer()
	for b.Loop() {
		benchDecompRes, err = Decompose(s, ModelAdditive)
		if err != nil {
			panic(err)
		}
	}
}

func BenchmarkDetectPeriod(b *testing.B) {
	s := benchSeries(10000)

	b.ResetTimer()
	for b.Loop() {
		if DetectPeriod(s.Y) == 0 {
			panic("expected a period")
		}
	}
}
