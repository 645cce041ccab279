package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hicpstats/inflation-report/forecast"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.Nil(t, cfg.Validate())

	opt, err := cfg.Forecast.EngineOptions().Validate()
	require.Nil(t, err)
	assert.Equal(t, forecast.NewDefaultOptions(), opt)
}

func TestConfigValidate(t *testing.T) {
	testData := map[string]struct {
		mutate func(*Config)
		err    error
	}{
		"no regions": {
			func(c *Config) { c.Data.Regions = nil },
			ErrNoRegions,
		},
		"no benchmark": {
			func(c *Config) { c.Data.Benchmark = "" },
			ErrNoBenchmark,
		},
		"bad historical start": {
			func(c *Config) { c.Data.HistoricalStart = "2002" },
			ErrBadStartPeriod,
		},
		"bad stats start": {
			func(c *Config) { c.Data.StatsStart = "january 2020" },
			ErrBadStartPeriod,
		},
		"zero horizon": {
			func(c *Config) { c.Forecast.Horizon = 0 },
			ErrBadHorizon,
		},
		"bad confidence": {
			func(c *Config) { c.Forecast.ConfidenceLevel = 1.5 },
			forecast.ErrInvalidConfidence,
		},
		"no output dir": {
			func(c *Config) { c.Output.Dir = "" },
			ErrNoOutputDir,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			td.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), td.err)
		})
	}
}

func TestAllRegions(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"AT", "DE", "EA20"}, cfg.AllRegions())

	// benchmark already listed is not duplicated
	cfg.Data.Regions = []string{"AT", "EA20"}
	assert.Equal(t, []string{"AT", "EA20"}, cfg.AllRegions())
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, DefaultConfig().Data.Regions, cfg.Data.Regions)
	assert.Equal(t, 12, cfg.Forecast.Horizon)
}
