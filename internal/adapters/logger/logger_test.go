package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.parcel.ch/parcel/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. NO_COLOR=1 keeps the output free of ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("installing mytool")
	assert.Contains(t, buf.String(), "installing mytool")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("remote unreachable")
	assert.Contains(t, buf.String(), "remote unreachable")
}

func TestLogger_Error(t *testing.T) {
	t.Run("renders zerr chains hierarchically", func(t *testing.T) {
		lg, buf := newTestLogger(t)

		err := zerr.Wrap(zerr.New("connection refused"), "fetch failed")
		lg.Error(err)

		out := buf.String()
		assert.Contains(t, out, "Error: fetch failed")
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "connection refused")
	})

	t.Run("plain errors render flat", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(zerr.New("boom"))

		out := buf.String()
		assert.Contains(t, out, "Error: boom")
		assert.NotContains(t, out, "Caused by:")
	})

	t.Run("nil error logs nothing", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(nil)
		assert.Empty(t, buf.String())
	})
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("installing mytool")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "installing mytool", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}
