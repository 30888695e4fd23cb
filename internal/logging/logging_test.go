package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/rankvote/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_FiltersByLevel drops records below the configured level.
func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelWarn, Writer: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

// TestNew_JSONCarriesRunID checks the JSON shape and that a run id is generated.
func TestNew_JSONCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true, Writer: &buf})
	logger.Debug("round", "n", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "round", rec["msg"])
	assert.Equal(t, "rankvote", rec["service"])

	id, ok := rec["run_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "run_id must be a UUID")
}

// TestNew_PinnedRunID uses the caller's run id verbatim.
func TestNew_PinnedRunID(t *testing.T) {
	var buf bytes.Buffer
	logging.New(logging.Config{Writer: &buf, RunID: "fixed"}).Info("x")
	assert.Contains(t, buf.String(), "run_id=fixed")
}

// TestLevel_String matches slog names.
func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", logging.LevelDebug.String())
	assert.Equal(t, "ERROR", logging.LevelError.String())
}
