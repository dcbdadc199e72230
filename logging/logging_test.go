package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/config"
	"github.com/katalvlaran/citypath/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), "%q", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LoggingConfig{Level: "info", Format: "JSON"}, &buf)
	log.Debug("hidden")
	log.Info("graph loaded", slog.Int("vertices", 9))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "graph loaded", rec["msg"])
	assert.Equal(t, float64(9), rec["vertices"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	log.Info("hidden")
	log.Warn("no route", slog.String("to", "Mersin"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `level=WARN msg="no route" to=Mersin`)
}
