package timeseries

import "time"

// TrendDirection classifies the sign of a fitted slope.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// TrendStrength classifies the slope magnitude relative to the series' own
// spread, keeping the label scale-invariant.
type TrendStrength string

const (
	TrendWeak     TrendStrength = "weak"
	TrendModerate TrendStrength = "moderate"
	TrendStrong   TrendStrength = "strong"
)

// SeasonalStrength classifies how much of the series variance sits within
// the seasonal phases.
type SeasonalStrength string

const (
	SeasonalWeak             SeasonalStrength = "weak"
	SeasonalModerate         SeasonalStrength = "moderate"
	SeasonalStrong           SeasonalStrength = "strong"
	SeasonalInsufficientData SeasonalStrength = "insufficient_data"
	SeasonalNoVariation      SeasonalStrength = "no_variation"
)

// Method selects a forecasting strategy.
type Method string

const (
	MethodLinear        Method = "linear"
	MethodExponential   Method = "exponential"
	MethodMovingAverage Method = "moving_average"
)

// DecompositionModel selects how components recombine into the original
// series.
type DecompositionModel string

const (
	ModelAdditive       DecompositionModel = "additive"
	ModelMultiplicative DecompositionModel = "multiplicative"
)

// Classification is the column typing derived from the current table. This is
// the only surface the chart-recommender collaborator consumes.
type Classification struct {
	TimeColumn   string   `json:"time_column"`
	ValueColumns []string `json:"value_columns"`
}

// TimeRange describes the observed span of the time column.
type TimeRange struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
}

// IntervalCount is one observed inter-sample gap and how often it occurred.
type IntervalCount struct {
	Interval time.Duration `json:"interval"`
	Count    int           `json:"count"`
}

// FrequencyProfile summarizes inter-sample spacing of the time column.
type FrequencyProfile struct {
	ModalInterval time.Duration   `json:"most_common_interval"`
	Intervals     []IntervalCount `json:"intervals"`
}

// ColumnStats holds time-aware descriptive statistics for one value column.
// Std is the sample standard deviation.
type ColumnStats struct {
	Count         int     `json:"count"`
	Mean          float64 `json:"mean"`
	Std           float64 `json:"std"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	FirstValue    float64 `json:"first_value"`
	LastValue     float64 `json:"last_value"`
	TotalChange   float64 `json:"total_change"`
	PercentChange float64 `json:"percent_change"`
}

// BasicAnalysis is the result of Analyzer.BasicAnalysis.
type BasicAnalysis struct {
	TimeColumn    string                 `json:"time_column"`
	ValueColumns  []string               `json:"value_columns"`
	TimeRange     TimeRange              `json:"time_range"`
	Frequency     FrequencyProfile       `json:"frequency_analysis"`
	MissingValues map[string]int         `json:"missing_values"`
	ColumnStats   map[string]ColumnStats `json:"basic_stats"`
}

// TrendResult describes the least-squares trend of one column against its
// ordinal index.
type TrendResult struct {
	Slope      float64        `json:"slope"`
	Intercept  float64        `json:"intercept"`
	RSquared   float64        `json:"r_squared"`
	Direction  TrendDirection `json:"trend_direction"`
	Strength   TrendStrength  `json:"trend_strength"`
	DataPoints int            `json:"data_points"`
	StartValue float64        `json:"start_value"`
	EndValue   float64        `json:"end_value"`
}

// TrendAnalysis is the result of Analyzer.TrendAnalysis.
type TrendAnalysis struct {
	Trends          map[string]TrendResult `json:"trend_analysis"`
	ColumnsAnalyzed []string               `json:"columns_analyzed"`
}

// PhaseStats summarizes the samples falling at one phase of the seasonal
// period. Std is the population standard deviation.
type PhaseStats struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Count int     `json:"count"`
}

// SeasonalAnalysis is the result of Analyzer.SeasonalAnalysis.
type SeasonalAnalysis struct {
	Column     string           `json:"column"`
	Period     int              `json:"period"`
	Phases     []PhaseStats     `json:"seasonal_components"`
	Pattern    []float64        `json:"seasonal_pattern"`
	Strength   SeasonalStrength `json:"seasonal_strength"`
	DataPoints int              `json:"data_points"`
}

// ForecastPoint is one forecast step projected onto a real timestamp.
type ForecastPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
	Error float64   `json:"error"`
}

// ForecastResult is the result of Analyzer.Forecast.
type ForecastResult struct {
	Column          string          `json:"column"`
	Method          Method          `json:"method"`
	Horizon         int             `json:"forecast_periods"`
	Points          []ForecastPoint `json:"points"`
	LastActualValue float64         `json:"last_actual_value"`
	LastActualTime  time.Time       `json:"last_actual_time"`
}

// VarianceExplained holds per-component variance ratios against the original
// series. The components are not orthogonal, so the ratios need not sum to 1.
type VarianceExplained struct {
	Trend    float64 `json:"trend"`
	Seasonal float64 `json:"seasonal"`
	Residual float64 `json:"residual"`
}

// Decomposition is the result of Analyzer.Decompose. All component slices are
// index-aligned with Original. Period is 0 when no seasonality was detected.
type Decomposition struct {
	Column            string             `json:"column"`
	Model             DecompositionModel `json:"model"`
	Original          []float64          `json:"original"`
	Trend             []float64          `json:"trend"`
	Seasonal          []float64          `json:"seasonal"`
	Residual          []float64          `json:"residual"`
	Period            int                `json:"period"`
	VarianceExplained VarianceExplained  `json:"variance_explained"`
}
