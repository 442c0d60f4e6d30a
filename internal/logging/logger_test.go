package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "hidden debug")
	logger.Info(ctx, "hidden info")
	logger.Warn(ctx, nil, "visible warn")
	logger.Error(ctx, errors.New("boom"), "visible error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
	assert.Contains(t, out, "visible error")
	assert.Contains(t, out, "error=boom")
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("diagnostic").
		With("day", 3).
		Debug(context.Background(), "filter round", "column", 2, "surviving", 4)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))

	assert.Equal(t, "filter round", entry["msg"])
	assert.Equal(t, "diagnostic", entry["component"])
	assert.Equal(t, float64(3), entry["day"])
	assert.Equal(t, float64(2), entry["column"])
	assert.Equal(t, float64(4), entry["surviving"])
}

func TestWithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "text", Output: &buf})
	_ = parent.With("child", true)

	parent.Info(context.Background(), "parent only")
	assert.NotContains(t, buf.String(), "child")
}

func TestOrNop(t *testing.T) {
	assert.IsType(t, NopLogger{}, OrNop(nil))

	logger := NewLogger(nil)
	assert.Same(t, logger, OrNop(logger))

	// Nop methods must be safe to call.
	nop := OrNop(nil).WithComponent("x").With("k", "v")
	nop.Error(context.Background(), errors.New("ignored"), "ignored")
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "text", Output: &buf})
	ctx := context.Background()

	StartOperation(logger, "solve").End(ctx)
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "operation=solve")

	buf.Reset()
	StartOperation(logger, "parse").EndWithError(ctx, errors.New("bad input"))
	assert.Contains(t, buf.String(), "Operation failed")
	assert.Contains(t, buf.String(), "bad input")
}
