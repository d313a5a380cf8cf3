package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler(t *testing.T) {
	var info, debug bytes.Buffer

	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)).With("request_id", "abc")

	logger.Debug("seat toggled")
	logger.Info("showtime selected")

	assert.NotContains(t, info.String(), "seat toggled")
	assert.Contains(t, info.String(), "showtime selected")
	assert.Contains(t, info.String(), "request_id=abc")

	assert.Contains(t, debug.String(), "seat toggled")
	assert.Contains(t, debug.String(), "showtime selected")
}

func TestInitTelemetryWithoutCollector(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	shutdown, err := InitTelemetry(context.Background(), DefaultConfig(), logger)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	shutdown(context.Background())
}
