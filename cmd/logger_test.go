package cmd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLogger(t *testing.T) {
	logger := buildLogger("debug", "json")
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	_, ok := logger.Handler().(*slog.JSONHandler)
	assert.True(t, ok)

	logger = buildLogger("unknown", "unknown")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	_, ok = logger.Handler().(*slog.TextHandler)
	assert.True(t, ok)

	logger = buildLogger("error", "text")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
