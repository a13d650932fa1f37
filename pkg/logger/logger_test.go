package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Aidin1998/userfeed/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		l, err := logger.NewLogger(level)
		require.NoError(t, err, level)
		require.NotNil(t, l)
	}

	_, err := logger.NewLogger("verbose")
	assert.Error(t, err)
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New("warn", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("store slow", zap.String("op", "list_users"))
	require.NoError(t, l.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "store slow", entry["msg"])
	assert.Equal(t, "list_users", entry["op"])
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logger.New("info", "xml", zapcore.AddSync(&bytes.Buffer{}))
	assert.Error(t, err)
}
