package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load reads configuration from the given file path, falling back to default
// locations and built-in defaults. Environment variables with the HICP_
// prefix override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)

	v.SetEnvPrefix("HICP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config, %w", err)
		}
		// no config file is fine, defaults apply
	}

	return parseConfig(v)
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("data.base_url", def.Data.BaseURL)
	v.SetDefault("data.regions", def.Data.Regions)
	v.SetDefault("data.benchmark", def.Data.Benchmark)
	v.SetDefault("data.historical_start", def.Data.HistoricalStart)
	v.SetDefault("data.stats_start", def.Data.StatsStart)
	v.SetDefault("data.request_timeout", 30*time.Second)

	v.SetDefault("forecast.horizon", def.Forecast.Horizon)
	v.SetDefault("forecast.training_window_primary", def.Forecast.TrainingWindowPrimary)
	v.SetDefault("forecast.training_window_fallback", def.Forecast.TrainingWindowFallback)
	v.SetDefault("forecast.min_primary_length", def.Forecast.MinPrimaryLength)
	v.SetDefault("forecast.confidence_level", def.Forecast.ConfidenceLevel)

	v.SetDefault("output.dir", def.Output.Dir)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config, %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config, %w", err)
	}
	return &cfg, nil
}
