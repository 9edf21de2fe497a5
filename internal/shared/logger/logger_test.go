package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, false, zerolog.InfoLevel)

	log.Info().Str("component", "test").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, false, zerolog.WarnLevel)

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_DevIsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, true, zerolog.InfoLevel)

	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()), "dev output should not be JSON")
}
