// Package obslog provides the structured logger shared by cmd/scdiff and
// its pairwise-compare worker pool: every comparison failure is logged as
// one error record naming both input paths and the error, and the run
// continues.
package obslog

import (
	"log/slog"
	"os"
)

// New builds the process-wide logger, writing leveled text to stderr.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// ComparisonFailure logs one pair's failed comparison without aborting the
// run: an error-level record with message "comparison failed" and the
// attributes path_a, path_b and error (whose text names the error kind).
func ComparisonFailure(logger *slog.Logger, pathA, pathB string, err error) {
	logger.Error("comparison failed", "path_a", pathA, "path_b", pathB, "error", err)
}
