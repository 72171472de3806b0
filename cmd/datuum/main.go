// Command datuum runs the time-indexed analytics engine against a CSV file
// and prints the results as JSON. With a plot path configured it also renders
// the forecast and decomposition charts to an HTML page.
package main

import (
	"flag"
	"os"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/ChimdumebiNebolisa/datuum2.0/table"
	"github.com/ChimdumebiNebolisa/datuum2.0/timeseries"
)

func main() {
	input := flag.String("input", "", "path to input csv (overrides config)")
	column := flag.String("column", "", "value column to analyze (overrides config)")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *column != "" {
		cfg.Column = *column
	}
	if cfg.Input == "" {
		log.Fatal("no input file: pass -input or set input in datuum.yaml")
	}

	if err := run(log, cfg); err != nil {
		log.WithError(err).Fatal("analysis failed")
	}
}

func run(log *logrus.Logger, cfg *Config) error {
	tbl, err := table.LoadCSV(cfg.Input, nil)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows":    tbl.NumRows(),
		"columns": len(tbl.Columns()),
	}).Info("loaded table")

	analyzer := timeseries.New()
	opt := &timeseries.SourceOptions{
		TimeColumn:   cfg.TimeColumn,
		ValueColumns: cfg.ValueColumns,
	}
	if err := analyzer.SetSource(tbl, opt); err != nil {
		return err
	}

	cls := analyzer.Classification()
	log.WithFields(logrus.Fields{
		"time_column":   cls.TimeColumn,
		"value_columns": cls.ValueColumns,
	}).Info("classified columns")

	out := map[string]any{"classification": cls}

	basic, err := analyzer.BasicAnalysis()
	if err != nil {
		return err
	}
	out["basic_analysis"] = basic

	trend, err := analyzer.TrendAnalysis(cfg.Column)
	if err != nil {
		log.WithError(err).Warn("trend analysis skipped")
	} else {
		out["trend_analysis"] = trend
	}

	column := cfg.Column
	if column == "" && len(cls.ValueColumns) > 0 {
		column = cls.ValueColumns[0]
	}
	if column != "" {
		if seasonal, err := analyzer.SeasonalAnalysis(column, cfg.Period); err != nil {
			log.WithError(err).Warn("seasonal analysis skipped")
		} else {
			out["seasonal_analysis"] = seasonal
		}

		forecast, err := analyzer.Forecast(column, cfg.Horizon, timeseries.Method(cfg.Method))
		if err != nil {
			log.WithError(err).Warn("forecast skipped")
		} else {
			out["forecast"] = forecast
		}

		decomp, err := analyzer.Decompose(column, timeseries.DecompositionModel(cfg.Model))
		if err != nil {
			log.WithError(err).Warn("decomposition skipped")
		}
		if decomp != nil {
			out["decomposition"] = decomp
		}

		if cfg.PlotPath != "" && (forecast != nil || decomp != nil) {
			if err := writePlots(analyzer, column, forecast, decomp, cfg.PlotPath); err != nil {
				return err
			}
			log.WithField("path", cfg.PlotPath).Info("wrote charts")
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writePlots(analyzer *timeseries.Analyzer, column string, forecast *timeseries.ForecastResult, decomp *timeseries.Decomposition, path string) error {
	series, err := analyzer.Series(column)
	if err != nil {
		return err
	}
	if forecast != nil && decomp != nil {
		return timeseries.WritePlot(path,
			timeseries.LineForecast(series, forecast),
			timeseries.LineDecomposition(series, decomp),
		)
	}
	if forecast != nil {
		return timeseries.WritePlot(path, timeseries.LineForecast(series, forecast))
	}
	return timeseries.WritePlot(path, timeseries.LineDecomposition(series, decomp))
}
