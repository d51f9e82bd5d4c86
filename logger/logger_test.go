package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-webapp/logger"
)

func TestNewFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logger.New("shouting", false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, logger.New("debug", true).GetLevel())
}

func TestWatermillAdapter(t *testing.T) {
	buf := new(bytes.Buffer)
	adapter := logger.NewWatermillAdapter(zerolog.New(buf))

	adapter.With(watermill.LogFields{"topic": "show.created"}).
		Error("handler failed", errors.New("boom"), watermill.LogFields{"attempt": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "handler failed", entry["message"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "show.created", entry["topic"])
	assert.Equal(t, "events", entry["component"])
	assert.EqualValues(t, 2, entry["attempt"])
}
