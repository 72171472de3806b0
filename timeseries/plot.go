package timeseries

import (
	"io"
	"math"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineTSeries generates an echarts multi-line chart for some arbitrary
// time/value combination. Every series in y must have the same length as t;
// NaN samples are dropped.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))

	filteredT := make([]time.Time, 0, len(t))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) || math.IsInf(y[i][j], 0) {
				continue
			}
			if i == 0 {
				filteredT = append(filteredT, t[j])
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(filteredT)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineForecast generates an echarts line chart showing the observed series
// followed by the forecast with its error band.
func LineForecast(s *Series, res *ForecastResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Forecast: " + res.Column,
			},
		),
	)

	total := s.Len() + len(res.Points)
	x := make([]time.Time, 0, total)
	actual := make([]opts.LineData, 0, total)
	forecast := make([]opts.LineData, 0, total)
	upper := make([]opts.LineData, 0, total)
	lower := make([]opts.LineData, 0, total)

	for i := 0; i < s.Len(); i++ {
		x = append(x, s.T[i])
		actual = append(actual, opts.LineData{Value: s.Y[i]})
		forecast = append(forecast, opts.LineData{Value: "-"})
		upper = append(upper, opts.LineData{Value: "-"})
		lower = append(lower, opts.LineData{Value: "-"})
	}
	for _, p := range res.Points {
		x = append(x, p.Time)
		actual = append(actual, opts.LineData{Value: "-"})
		forecast = append(forecast, opts.LineData{Value: p.Value})
		upper = append(upper, opts.LineData{Value: p.Value + p.Error})
		lower = append(lower, opts.LineData{Value: p.Value - p.Error})
	}

	line.SetXAxis(x).
		AddSeries("Actual", actual).
		AddSeries("Forecast", forecast).
		AddSeries("Upper", upper).
		AddSeries("Lower", lower)
	return line
}

// LineDecomposition generates the component chart for a decomposition result.
func LineDecomposition(s *Series, res *Decomposition) *charts.Line {
	return LineTSeries(
		"Decomposition: "+res.Column,
		[]string{"Original", "Trend", "Seasonal", "Residual"},
		s.T,
		[][]float64{res.Original, res.Trend, res.Seasonal, res.Residual},
	)
}

// WritePlot renders one or more charts to an HTML file at path.
func WritePlot(path string, chart ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(chart...)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return page.Render(io.MultiWriter(file))
}
