package main

import (
	"strings"

	"github.com/spf13/viper"
)

// Config drives one analysis run. Values come from defaults, an optional
// datuum.yaml in the working directory, and DATUUM_* environment variables,
// in that order of precedence.
type Config struct {
	Input        string   `mapstructure:"input"`
	TimeColumn   string   `mapstructure:"time_column"`
	ValueColumns []string `mapstructure:"value_columns"`
	Column       string   `mapstructure:"column"`
	Horizon      int      `mapstructure:"horizon"`
	Method       string   `mapstructure:"method"`
	Model        string   `mapstructure:"model"`
	Period       int      `mapstructure:"period"`
	PlotPath     string   `mapstructure:"plot_path"`
	LogLevel     string   `mapstructure:"log_level"`
}

func loadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("datuum")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("horizon", 10)
	v.SetDefault("method", "linear")
	v.SetDefault("model", "additive")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("DATUUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
