// Package config holds the report generator configuration loaded from file,
// environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hicpstats/inflation-report/forecast"
	"github.com/hicpstats/inflation-report/timeseries"
)

var (
	ErrNoRegions      = errors.New("at least one region is required")
	ErrNoBenchmark    = errors.New("a benchmark region is required")
	ErrBadHorizon     = errors.New("forecast horizon must be at least 1")
	ErrBadStartPeriod = errors.New("start periods must be formatted as YYYY-MM")
	ErrNoOutputDir    = errors.New("an output directory is required")
)

// Config is the complete application configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Forecast ForecastConfig `mapstructure:"forecast"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DataConfig controls the Eurostat retrieval layer.
type DataConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	Regions         []string      `mapstructure:"regions"`          // geo codes, e.g. AT, DE
	Benchmark       string        `mapstructure:"benchmark"`        // comparison region, e.g. EA20
	HistoricalStart string        `mapstructure:"historical_start"` // first period kept, YYYY-MM
	StatsStart      string        `mapstructure:"stats_start"`      // first period entering statistics
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// ForecastConfig mirrors the engine options plus the horizon length.
type ForecastConfig struct {
	Horizon                int     `mapstructure:"horizon"`
	TrainingWindowPrimary  int     `mapstructure:"training_window_primary"`
	TrainingWindowFallback int     `mapstructure:"training_window_fallback"`
	MinPrimaryLength       int     `mapstructure:"min_primary_length"`
	ConfidenceLevel        float64 `mapstructure:"confidence_level"`
}

// EngineOptions converts the config section into engine options.
func (f ForecastConfig) EngineOptions() *forecast.Options {
	return &forecast.Options{
		TrainingWindowPrimary:  f.TrainingWindowPrimary,
		TrainingWindowFallback: f.TrainingWindowFallback,
		MinPrimaryLength:       f.MinPrimaryLength,
		ConfidenceLevel:        f.ConfidenceLevel,
	}
}

// OutputConfig controls where charts and reports are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig controls log level and format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // zerolog level name
	Format string `mapstructure:"format"` // "console" or "json"
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			BaseURL:         "https://ec.europa.eu/eurostat/api/dissemination/statistics/1.0/data",
			Regions:         []string{"AT", "DE"},
			Benchmark:       "EA20",
			HistoricalStart: "2002-01",
			StatsStart:      "2020-01",
			RequestTimeout:  30 * time.Second,
		},
		Forecast: ForecastConfig{
			Horizon:                12,
			TrainingWindowPrimary:  forecast.DefaultTrainingWindowPrimary,
			TrainingWindowFallback: forecast.DefaultTrainingWindowFallback,
			MinPrimaryLength:       forecast.DefaultMinPrimaryLength,
			ConfidenceLevel:        forecast.DefaultConfidenceLevel,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if len(c.Data.Regions) == 0 {
		return ErrNoRegions
	}
	if c.Data.Benchmark == "" {
		return ErrNoBenchmark
	}
	for _, p := range []string{c.Data.HistoricalStart, c.Data.StatsStart} {
		if _, err := timeseries.ParsePeriod(p); err != nil {
			return fmt.Errorf("%q, %w", p, ErrBadStartPeriod)
		}
	}
	if c.Forecast.Horizon < 1 {
		return fmt.Errorf("got %d, %w", c.Forecast.Horizon, ErrBadHorizon)
	}
	if _, err := c.Forecast.EngineOptions().Validate(); err != nil {
		return err
	}
	if c.Output.Dir == "" {
		return ErrNoOutputDir
	}
	return nil
}

// AllRegions returns the configured regions with the benchmark appended.
func (c *Config) AllRegions() []string {
	regions := make([]string, 0, len(c.Data.Regions)+1)
	regions = append(regions, c.Data.Regions...)
	for _, r := range regions {
		if r == c.Data.Benchmark {
			return regions
		}
	}
	return append(regions, c.Data.Benchmark)
}
