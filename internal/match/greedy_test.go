package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/scdiff/internal/compare"
	"github.com/comalice/scdiff/internal/match"
)

func TestGreedySuperSetAdditionFindsFullLeftCoverage(t *testing.T) {
	g1, err := compare.Build("g1", onOffChart())
	require.NoError(t, err)
	g2, err := compare.Build("g2", onOffMidChart())
	require.NoError(t, err)

	res := match.Greedy(g1, g2)

	assert.True(t, res.Greedy)
	assert.Equal(t, 7, res.Score)
	assert.Equal(t, "off", res.Mapping["off"])
	assert.Equal(t, "on", res.Mapping["on"])
}

func TestGreedyIdenticalChartsMatchFully(t *testing.T) {
	g1, err := compare.Build("g1", onOffChart())
	require.NoError(t, err)
	g2, err := compare.Build("g2", onOffChart())
	require.NoError(t, err)

	res := match.Greedy(g1, g2)

	assert.Equal(t, len(g1.Atoms()), res.Score)
}

func TestGreedyMappingIsInjective(t *testing.T) {
	g1, err := compare.Build("g1", onOffMidChart())
	require.NoError(t, err)
	g2, err := compare.Build("g2", onOffChart())
	require.NoError(t, err)

	res := match.Greedy(g1, g2)

	seen := make(map[string]bool)
	for _, v := range res.Mapping {
		assert.False(t, seen[v], "value %q mapped from more than one key", v)
		seen[v] = true
	}
}

func TestGreedyAndExhaustiveAgreeOnScoreForSmallInput(t *testing.T) {
	g1, err := compare.Build("g1", onOffChart())
	require.NoError(t, err)
	g2, err := compare.Build("g2", onOffMidChart())
	require.NoError(t, err)
	tb1, err := compare.BuildTieBreak("tb1", onOffChart())
	require.NoError(t, err)
	tb2, err := compare.BuildTieBreak("tb2", onOffMidChart())
	require.NoError(t, err)

	greedy := match.Greedy(g1, g2)
	exhaustive := match.Exhaustive(g1, g2, tb1, tb2)

	assert.Equal(t, exhaustive.Score, greedy.Score)
}
