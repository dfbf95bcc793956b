package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Msg("Listening on port 3000")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Listening on port 3000", entry["message"])
}

func TestNewLoggerDev(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Out: &buf, Dev: true})

	log.Debug().Msg("visible")

	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.NotContains(t, out, "\x1b[", "buffer is not a terminal")
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Out: &buf, Level: "warn"})

	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())
}
