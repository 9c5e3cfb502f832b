package obslog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/scdiff/internal/obslog"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	logger := obslog.New(false)
	assert.False(t, logger.Enabled(nil, slog.LevelDebug))
	assert.True(t, logger.Enabled(nil, slog.LevelInfo))
}

func TestNewVerboseEnablesDebugLevel(t *testing.T) {
	logger := obslog.New(true)
	assert.True(t, logger.Enabled(nil, slog.LevelDebug))
}

func TestComparisonFailureLogsBothPathsAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	obslog.ComparisonFailure(logger, "a.yaml", "b.yaml", errors.New("boom"))

	out := buf.String()
	assert.True(t, strings.Contains(out, "a.yaml"))
	assert.True(t, strings.Contains(out, "b.yaml"))
	assert.True(t, strings.Contains(out, "boom"))
	assert.True(t, strings.Contains(out, "comparison failed"))
}
