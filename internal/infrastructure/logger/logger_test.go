package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "flight-booking"}, &buf)

	log.Info().Str("origin", "JFK").Msg("Search started")

	entry := logEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Search started", entry["message"])
	assert.Equal(t, "flight-booking", entry["service"])
	assert.Equal(t, "JFK", entry["origin"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewWithOutput_Console(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "flight-booking"}, &buf)

	log.Info().Msg("Search started")

	assert.Contains(t, buf.String(), "Search started")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  string
		emit      string
		shouldLog bool
	}{
		{name: "debug passes at debug", minLevel: "debug", emit: "debug", shouldLog: true},
		{name: "debug filtered at info", minLevel: "info", emit: "debug", shouldLog: false},
		{name: "warn passes at info", minLevel: "info", emit: "warn", shouldLog: true},
		{name: "info filtered at warn", minLevel: "warn", emit: "info", shouldLog: false},
		{name: "error passes at error", minLevel: "error", emit: "error", shouldLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.minLevel, Format: "json"}, &buf)

			switch tt.emit {
			case "debug":
				log.Debug().Msg("x")
			case "info":
				log.Info().Msg("x")
			case "warn":
				log.Warn().Msg("x")
			case "error":
				log.Error().Msg("x")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewWithOutput_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "chatty", Format: "json"}, &buf)

	log.Debug().Msg("filtered")
	assert.Empty(t, buf.String())

	log.Info().Msg("emitted")
	assert.NotEmpty(t, buf.String())
}

func TestNewWithOutput_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("x")

	entry := logEntry(t, &buf)
	require.Contains(t, entry, "caller")
	assert.Contains(t, entry["caller"].(string), "logger_test.go")
}
