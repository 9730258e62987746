package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"chatty":  slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestSetRawLogLevel(t *testing.T) {
	SetRawLogLevel("error")
	assert.False(t, GetLogger().Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, GetLogger().Enabled(context.Background(), slog.LevelError))

	SetLogLevel(slog.LevelDebug)
	assert.True(t, GetLogger().Enabled(context.Background(), slog.LevelDebug))
}

func TestNopLogger(t *testing.T) {
	assert.False(t, NopLogger().Enabled(context.Background(), slog.LevelError))
}
