package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/figstats/logger"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	require.Equal(t, zerolog.WarnLevel, logger.ParseLevel(" WARN "))
	require.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	require.Equal(t, zerolog.InfoLevel, logger.ParseLevel("chatty"))
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", "json")
	log.Info().Int("count", 3).Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "hello", line["message"])
	require.Equal(t, "figstats", line["service"])
	require.EqualValues(t, 3, line["count"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "warn", "json")
	log.Info().Msg("dropped")
	require.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug", "console")
	log.Debug().Str("question", "invalid").Msg("running")
	require.Contains(t, buf.String(), "running")
	require.Contains(t, buf.String(), "question=")
}
