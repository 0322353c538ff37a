package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"broker-service/pkg/ctxutil"
	"broker-service/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestLoggerStampsRequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo)

	ctx := ctxutil.WithRequestID(context.Background(), "req-123")
	log.InfoContext(ctx, "placing order")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "req-123", record["request_id"])
	require.Equal(t, "placing order", record["msg"])
}

func TestLoggerOmitsRequestIDWhenAbsent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo)

	log.InfoContext(context.Background(), "placing order")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.NotContains(t, record, "request_id")
}

func TestLoggerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelWarn)

	log.InfoContext(context.Background(), "suppressed")
	require.Zero(t, buf.Len())

	log.WarnContext(context.Background(), "emitted")
	require.NotZero(t, buf.Len())
}
