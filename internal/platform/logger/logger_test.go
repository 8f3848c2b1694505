package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askary/studyaid-api/internal/config"
)

func TestSetupLogLevels(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
		errorEnabled bool
	}{
		{name: "debug level", logLevel: "debug", debugEnabled: true, errorEnabled: true},
		{name: "info level", logLevel: "info", debugEnabled: false, errorEnabled: true},
		{name: "error level", logLevel: "error", debugEnabled: false, errorEnabled: true},
		{name: "case insensitive", logLevel: "DEBUG", debugEnabled: true, errorEnabled: true},
		{name: "invalid falls back to info", logLevel: "verbose", debugEnabled: false, errorEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.Equal(t, tt.debugEnabled, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.errorEnabled, logger.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	logger := Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})
	assert.Equal(t, logger, slog.Default())
}
