// Package timeseries is the time-indexed analytics core of datuum2.0. Given a
// typed table it identifies the temporal and numeric columns, computes
// time-aware descriptive statistics, fits linear trends, detects periodic
// seasonality from raw autocorrelation, decomposes series into components,
// and produces short-horizon forecasts.
//
// Every operation recomputes from the current table; the only state an
// Analyzer owns is its column configuration. Operations degrade gracefully:
// failures come back as a *Failure with a stable reason code, never a panic.
package timeseries

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/ChimdumebiNebolisa/datuum2.0/table"
)

// minimum series lengths per operation
const (
	minTrendPoints    = 2
	minSeasonalPoints = 10
)

// topIntervals caps the interval histogram reported by BasicAnalysis.
const topIntervals = 5

// SourceOptions overrides column auto-detection in SetSource. Zero fields
// fall back to the classifier.
type SourceOptions struct {
	TimeColumn   string
	ValueColumns []string
}

// Analyzer runs all analyses against one configured table. It is not safe
// for concurrent use: SetSource must not race any analysis call. A
// multi-goroutine host should use one Analyzer per request or serialize
// access externally.
type Analyzer struct {
	tbl table.Table
	cls Classification
}

// New returns an Analyzer with no table configured.
func New() *Analyzer {
	return &Analyzer{}
}

// SetSource (re)configures the analyzer with a table. Omitted options are
// filled in by column classification. The table is held by reference and must
// not be mutated concurrently with analysis calls.
func (a *Analyzer) SetSource(tbl table.Table, opt *SourceOptions) error {
	if tbl == nil {
		return newFailure(ReasonNoData, ErrNoData, "nil table")
	}
	a.tbl = tbl

	detected := Classify(tbl)
	a.cls = detected
	if opt != nil {
		if opt.TimeColumn != "" {
			a.cls.TimeColumn = opt.TimeColumn
		}
		if len(opt.ValueColumns) > 0 {
			cols := make([]string, len(opt.ValueColumns))
			copy(cols, opt.ValueColumns)
			a.cls.ValueColumns = cols
		}
	}
	return nil
}

// Classification returns the configured column typing. This is the surface
// the chart-recommender collaborator consumes.
func (a *Analyzer) Classification() Classification {
	cols := make([]string, len(a.cls.ValueColumns))
	copy(cols, a.cls.ValueColumns)
	return Classification{
		TimeColumn:   a.cls.TimeColumn,
		ValueColumns: cols,
	}
}

func (a *Analyzer) precheck() error {
	if a.tbl == nil {
		return ErrNoData
	}
	if a.cls.TimeColumn == "" {
		return ErrNoTimeColumn
	}
	return nil
}

// checkColumn validates that a requested column exists and is numeric.
func (a *Analyzer) checkColumn(column string) error {
	found := false
	for _, c := range a.tbl.Columns() {
		if c == column {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%q, %w", column, ErrColumnNotFound)
	}
	for _, c := range a.cls.ValueColumns {
		if c == column {
			return nil
		}
	}
	if !columnIsNumeric(a.tbl, column) {
		return fmt.Errorf("%q, %w", column, ErrColumnNotNumeric)
	}
	return nil
}

// BasicAnalysis reports the time range, sampling frequency profile,
// missing-value counts, and per-column descriptive statistics of the
// configured table.
func (a *Analyzer) BasicAnalysis() (*BasicAnalysis, error) {
	if err := a.precheck(); err != nil {
		return nil, failureFor(err, "basic analysis")
	}

	n := a.tbl.NumRows()
	times := make(TimeSlice, 0, n)
	missingTime := 0
	for i := 0; i < n; i++ {
		c, ok := a.tbl.At(i, a.cls.TimeColumn)
		if !ok {
			return nil, failureFor(fmt.Errorf("time column %q, %w", a.cls.TimeColumn, ErrColumnNotFound), "basic analysis")
		}
		t, ok := c.AsTime()
		if !ok {
			missingTime++
			continue
		}
		times = append(times, t)
	}
	if len(times) == 0 {
		return nil, failureFor(ErrNoTimeColumn, "basic analysis")
	}

	minT, maxT := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}

	// interval histogram over row-order diffs of parseable timestamps
	freq := FrequencyProfile{}
	counts := times.IntervalCounts()
	if len(counts) > 0 {
		freq.ModalInterval = counts[0].Interval
		if len(counts) > topIntervals {
			counts = counts[:topIntervals]
		}
		freq.Intervals = counts
	}

	missing := map[string]int{a.cls.TimeColumn: missingTime}
	colStats := make(map[string]ColumnStats, len(a.cls.ValueColumns))
	for _, col := range a.cls.ValueColumns {
		values, absent := a.columnValues(col)
		missing[col] = absent
		if len(values) == 0 {
			continue
		}
		colStats[col] = describeColumn(values)
	}

	return &BasicAnalysis{
		TimeColumn:   a.cls.TimeColumn,
		ValueColumns: a.Classification().ValueColumns,
		TimeRange: TimeRange{
			Start:    minT,
			End:      maxT,
			Duration: maxT.Sub(minT),
		},
		Frequency:     freq,
		MissingValues: missing,
		ColumnStats:   colStats,
	}, nil
}

// columnValues collects a column's numeric values in row order, counting
// cells that are missing or not numeric.
func (a *Analyzer) columnValues(col string) ([]float64, int) {
	n := a.tbl.NumRows()
	values := make([]float64, 0, n)
	absent := 0
	for i := 0; i < n; i++ {
		c, ok := a.tbl.At(i, col)
		if !ok {
			absent++
			continue
		}
		v, ok := c.AsFloat()
		if !ok {
			absent++
			continue
		}
		values = append(values, v)
	}
	return values, absent
}

func describeColumn(values []float64) ColumnStats {
	n := len(values)
	cs := ColumnStats{
		Count:      n,
		Mean:       stat.Mean(values, nil),
		Min:        values[0],
		Max:        values[0],
		FirstValue: values[0],
		LastValue:  values[n-1],
	}
	if n > 1 {
		cs.Std = stat.StdDev(values, nil)
		cs.TotalChange = values[n-1] - values[0]
		if values[0] != 0 {
			cs.PercentChange = cs.TotalChange / values[0] * 100
		}
	}
	for _, v := range values {
		if v < cs.Min {
			cs.Min = v
		}
		if v > cs.Max {
			cs.Max = v
		}
	}
	return cs
}

// Series prepares the clean, time-sorted series for one value column. This
// is the same preparation every analysis runs on, exposed for collaborators
// that need the raw (timestamp, value) pairs, e.g. for plotting.
func (a *Analyzer) Series(column string) (*Series, error) {
	if err := a.precheck(); err != nil {
		return nil, failureFor(err, "series")
	}
	if err := a.checkColumn(column); err != nil {
		return nil, failureFor(err, "series")
	}
	series, err := prepareSeries(a.tbl, a.cls.TimeColumn, column, 1)
	if err != nil {
		return nil, failureFor(err, "series")
	}
	return series, nil
}

// TrendAnalysis fits a linear trend per column. An empty column analyzes
// every configured value column. Columns too short for a fit are skipped;
// the call fails only when nothing is analyzable.
func (a *Analyzer) TrendAnalysis(column string) (*TrendAnalysis, error) {
	if err := a.precheck(); err != nil {
		return nil, failureFor(err, "trend analysis")
	}

	var columns []string
	if column == "" {
		columns = a.cls.ValueColumns
	} else {
		for _, c := range a.cls.ValueColumns {
			if c == column {
				columns = []string{column}
				break
			}
		}
	}
	if len(columns) == 0 {
		return nil, failureFor(ErrNoValidColumns, "trend analysis")
	}

	trends := make(map[string]TrendResult, len(columns))
	for _, col := range columns {
		series, err := prepareSeries(a.tbl, a.cls.TimeColumn, col, minTrendPoints)
		if err != nil {
			continue
		}
		res, err := EstimateTrend(series)
		if err != nil {
			continue
		}
		trends[col] = *res
	}
	if len(trends) == 0 {
		return nil, failureFor(fmt.Errorf("no column has %d usable points, %w", minTrendPoints, ErrInsufficientData), "trend analysis")
	}

	analyzed := make([]string, 0, len(trends))
	for _, col := range columns {
		if _, ok := trends[col]; ok {
			analyzed = append(analyzed, col)
		}
	}
	return &TrendAnalysis{
		Trends:          trends,
		ColumnsAnalyzed: analyzed,
	}, nil
}

// SeasonalAnalysis profiles the periodic behavior of one column. A period
// of 0 or less triggers auto-detection.
func (a *Analyzer) SeasonalAnalysis(column string, period int) (*SeasonalAnalysis, error) {
	if err := a.precheck(); err != nil {
		return nil, failureFor(err, "seasonal analysis")
	}
	if err := a.checkColumn(column); err != nil {
		return nil, failureFor(err, "seasonal analysis")
	}

	series, err := prepareSeries(a.tbl, a.cls.TimeColumn, column, minSeasonalPoints)
	if err != nil {
		return nil, failureFor(err, "seasonal analysis")
	}

	if period <= 0 {
		period = DetectPeriod(series.Y)
	}
	if period < 2 {
		return nil, failureFor(ErrNoPeriodDetected, "seasonal analysis")
	}

	phases, pattern := seasonalProfile(series.Y, period)
	return &SeasonalAnalysis{
		Column:     column,
		Period:     period,
		Phases:     phases,
		Pattern:    pattern,
		Strength:   seasonalStrength(series.Y, period),
		DataPoints: series.Len(),
	}, nil
}

// Forecast projects one column horizon steps past its last observation using
// the requested strategy.
func (a *Analyzer) Forecast(column string, horizon int, method Method) (*ForecastResult, error) {
	if err := a.precheck(); err != nil {
		return nil, failureFor(err, "forecast")
	}
	if err := a.checkColumn(column); err != nil {
		return nil, failureFor(err, "forecast")
	}

	series, err := prepareSeries(a.tbl, a.cls.TimeColumn, column, MinForecastPoints)
	if err != nil {
		return nil, failureFor(err, "forecast")
	}

	res, err := ForecastSeries(series, horizon, method)
	if err != nil {
		return nil, failureFor(err, "forecast")
	}
	res.Column = column
	return res, nil
}

// Decompose splits one column into trend, seasonal, and residual components.
func (a *Analyzer) Decompose(column string, model DecompositionModel) (*Decomposition, error) {
	if err := a.precheck(); err != nil {
		return nil, failureFor(err, "decomposition")
	}
	if err := a.checkColumn(column); err != nil {
		return nil, failureFor(err, "decomposition")
	}

	series, err := prepareSeries(a.tbl, a.cls.TimeColumn, column, MinDecompositionPoints)
	if err != nil {
		return nil, failureFor(err, "decomposition")
	}

	res, err := Decompose(series, model)
	if err != nil {
		return nil, failureFor(err, "decomposition")
	}
	res.Column = column
	return res, nil
}
