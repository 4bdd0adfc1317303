package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn", "json")

	logger.Info("dropped")
	logger.Warn("Rental overdue", "rentId", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Rental overdue", entry["msg"])
	assert.Equal(t, float64(7), entry["rentId"])
}

func TestNewWithWriter_TextIsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "debug", "pretty")

	logger.Debug("Truck returned", "truckId", 3)

	assert.Contains(t, buf.String(), `msg="Truck returned"`)
	assert.Contains(t, buf.String(), "truckId=3")
}
