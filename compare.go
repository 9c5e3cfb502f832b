// Package scdiff is the plagiarism-detection engine's external surface: it
// normalises two statecharts, builds their comparison graphs, matches them
// with the exhaustive or greedy strategy as the input size dictates, and
// returns the resulting diff and similarity scores. The engine is purely
// computational and single-threaded per comparison; a caller that wants to
// compare many pairs runs Compare concurrently across its own worker pool.
package scdiff

import (
	"fmt"

	"github.com/comalice/scdiff/internal/compare"
	"github.com/comalice/scdiff/internal/diffing"
	"github.com/comalice/scdiff/internal/match"
	"github.com/comalice/scdiff/internal/normalize"
	"github.com/comalice/scdiff/internal/statechart"
)

// Result is the outcome of comparing two statecharts: the grouped diff plus
// the five similarity metrics and which matcher produced them.
type Result struct {
	Diff diffing.Diff

	Similarity        float64
	SingleSimilarity0 float64
	SingleSimilarity1 float64
	MaxSimilarity     float64
	StateSimilarity   float64

	IsGreedy bool
}

// Option configures a Compare call.
type Option func(*options)

type options struct {
	forceGreedy bool
}

// WithForceGreedy makes Compare always use the greedy matcher, even when
// the inputs are small enough for the exhaustive one. Exists for testing
// property 8 (agreement between the two matchers at the threshold
// boundary) and for callers who would rather trade optimality for a
// predictable runtime.
func WithForceGreedy() Option {
	return func(o *options) { o.forceGreedy = true }
}

// Normalise applies the five canonicalisation passes to a statechart and
// returns the canonical chart plus a report of what was removed or
// collapsed. The input is never mutated.
func Normalise(c *statechart.Chart) (*statechart.Chart, *normalize.Report, error) {
	return normalize.Run(c)
}

// Compare normalises both inputs, builds their comparison graphs, selects a
// matcher, and assembles the resulting diff and similarity scores. Neither
// input is mutated, and neither is retained after Compare returns.
func Compare(a, b *statechart.Chart, opts ...Option) (Result, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	canonicalA, _, err := normalize.Run(a)
	if err != nil {
		return Result{}, fmt.Errorf("normalise first input: %w", err)
	}
	canonicalB, _, err := normalize.Run(b)
	if err != nil {
		return Result{}, fmt.Errorf("normalise second input: %w", err)
	}

	g1, err := compare.Build("a", canonicalA)
	if err != nil {
		return Result{}, fmt.Errorf("build comparison graph for first input: %w", err)
	}
	g2, err := compare.Build("b", canonicalB)
	if err != nil {
		return Result{}, fmt.Errorf("build comparison graph for second input: %w", err)
	}

	var mr match.Result
	if !cfg.forceGreedy && match.Eligible(g1, g2) {
		tb1, err := compare.BuildTieBreak("a-tiebreak", canonicalA)
		if err != nil {
			return Result{}, fmt.Errorf("build tie-break graph for first input: %w", err)
		}
		tb2, err := compare.BuildTieBreak("b-tiebreak", canonicalB)
		if err != nil {
			return Result{}, fmt.Errorf("build tie-break graph for second input: %w", err)
		}
		mr = match.Exhaustive(g1, g2, tb1, tb2)
	} else {
		mr = match.Greedy(g1, g2)
	}

	diff, sim := diffing.Assemble(g1, g2, mr.Mapping)
	return Result{
		Diff:              diff,
		Similarity:        sim.Similarity,
		SingleSimilarity0: sim.SingleSimilarity0,
		SingleSimilarity1: sim.SingleSimilarity1,
		MaxSimilarity:     sim.MaxSimilarity,
		StateSimilarity:   sim.StateSimilarity,
		IsGreedy:          mr.Greedy,
	}, nil
}
