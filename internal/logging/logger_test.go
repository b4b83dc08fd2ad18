package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})

	Logger.Info().Str("component", "test").Msg("hello")
	require.Contains(t, buf.String(), `"component":"test"`)
	require.Contains(t, buf.String(), `"hello"`)
}

func TestInitLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})

	Logger.Info().Msg("suppressed")
	Logger.Warn().Msg("visible")

	out := buf.String()
	require.NotContains(t, out, "suppressed")
	require.Contains(t, out, "visible")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for input, want := range cases {
		require.Equal(t, want, parseLevel(input), "level %s", input)
	}
}

func TestConsoleFormatHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})

	Logger.Info().Msg("console line")
	require.True(t, strings.Contains(buf.String(), "console line"))
}
