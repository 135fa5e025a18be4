package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/labyrinth/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNewWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, slog.LevelInfo)

	logger.Error("boom", "error", errors.New("bad token"))
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `err="bad token"`)
	assert.NotContains(t, out, "hidden")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.LevelFor(true))
	assert.Equal(t, slog.LevelWarn, logging.LevelFor(false))
}
