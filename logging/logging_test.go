package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/hicpstats/inflation-report/config"
)

func TestNew(t *testing.T) {
	testData := map[string]struct {
		cfg      config.LoggingConfig
		expected zerolog.Level
	}{
		"debug level": {
			cfg:      config.LoggingConfig{Level: "debug", Format: "console"},
			expected: zerolog.DebugLevel,
		},
		"warn json": {
			cfg:      config.LoggingConfig{Level: "warn", Format: "json"},
			expected: zerolog.WarnLevel,
		},
		"unknown level falls back to info": {
			cfg:      config.LoggingConfig{Level: "chatty", Format: "console"},
			expected: zerolog.InfoLevel,
		},
		"empty config": {
			cfg:      config.LoggingConfig{},
			expected: zerolog.InfoLevel,
		},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			log := New(td.cfg)
			assert.Equal(t, td.expected, log.GetLevel())
		})
	}
}
