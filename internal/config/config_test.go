package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TERRA_ENV", "")
	t.Setenv("TERRA_LOG_LEVEL", "")
	t.Setenv("TERRA_CONTENT_DIR", "")
	t.Setenv("TERRA_VOLUME", "")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "prefabs", cfg.ContentDir)
	assert.InDelta(t, 0.5, cfg.Volume, 1e-9)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 0, cfg.StartLevel)
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("TERRA_ENV", "production")
	t.Setenv("TERRA_LOG_LEVEL", "warn")
	t.Setenv("TERRA_CONTENT_DIR", "/tmp/content")
	t.Setenv("TERRA_VOLUME", "3")

	cfg, err := Load([]string{"-ab", "-level", "4", "-mute"})
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "/tmp/content", cfg.ContentDir)
	assert.InDelta(t, 1.0, cfg.Volume, 1e-9)
	assert.True(t, cfg.AllAbilities)
	assert.True(t, cfg.Mute)
	assert.Equal(t, 4, cfg.StartLevel)
}

func TestLoadDebugLowersLogLevel(t *testing.T) {
	t.Setenv("TERRA_LOG_LEVEL", "error")

	cfg, err := Load([]string{"-debug"})
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"negative level", []string{"-level", "-1"}},
		{"non numeric level", []string{"-level", "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
