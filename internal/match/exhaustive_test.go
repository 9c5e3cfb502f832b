package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/scdiff/internal/compare"
	"github.com/comalice/scdiff/internal/match"
	"github.com/comalice/scdiff/internal/statechart"
	"github.com/comalice/scdiff/testutil"
)

// onOffChart is scenario S1's first statechart: two states with a single
// shared trigger between them.
func onOffChart() *statechart.Chart {
	return testutil.ChartOf(
		[]testutil.StateSpec{
			{ID: "off", Name: "Off", Kind: statechart.Normal, Initial: true},
			{ID: "on", Name: "On", Kind: statechart.Normal},
		},
		[]testutil.TransitionSpec{
			{ID: "t1", Source: "off", Target: "on", Spec: statechart.NewSpec([]string{"operate"}, "", nil)},
			{ID: "t2", Source: "on", Target: "off", Spec: statechart.NewSpec([]string{"operate"}, "", nil)},
		},
	)
}

// onOffMidChart is scenario S1's second statechart: a superset addition of
// a third state and a transition into it.
func onOffMidChart() *statechart.Chart {
	return testutil.ChartOf(
		[]testutil.StateSpec{
			{ID: "off", Name: "Off", Kind: statechart.Normal, Initial: true},
			{ID: "on", Name: "On", Kind: statechart.Normal},
			{ID: "mid", Name: "Mid", Kind: statechart.Normal},
		},
		[]testutil.TransitionSpec{
			{ID: "t1", Source: "off", Target: "on", Spec: statechart.NewSpec([]string{"operate"}, "", nil)},
			{ID: "t2", Source: "on", Target: "off", Spec: statechart.NewSpec([]string{"operate"}, "", nil)},
			{ID: "t3", Source: "on", Target: "mid", Spec: statechart.NewSpec([]string{"control"}, "", nil)},
		},
	)
}

func TestEligibleUnderThreshold(t *testing.T) {
	g1, err := compare.Build("g1", onOffChart())
	require.NoError(t, err)
	g2, err := compare.Build("g2", onOffMidChart())
	require.NoError(t, err)
	assert.True(t, match.Eligible(g1, g2))
}

func TestExhaustiveSuperSetAddition(t *testing.T) {
	g1, err := compare.Build("g1", onOffChart())
	require.NoError(t, err)
	g2, err := compare.Build("g2", onOffMidChart())
	require.NoError(t, err)
	tb1, err := compare.BuildTieBreak("tb1", onOffChart())
	require.NoError(t, err)
	tb2, err := compare.BuildTieBreak("tb2", onOffMidChart())
	require.NoError(t, err)

	res := match.Exhaustive(g1, g2, tb1, tb2)

	assert.Equal(t, 7, res.Score)
	assert.False(t, res.Greedy)
	assert.Equal(t, "off", res.Mapping["off"])
	assert.Equal(t, "on", res.Mapping["on"])
	assert.NotContains(t, res.Mapping, "t3")
}

func TestExhaustiveIdenticalChartsMatchFully(t *testing.T) {
	g1, err := compare.Build("g1", onOffChart())
	require.NoError(t, err)
	g2, err := compare.Build("g2", onOffChart())
	require.NoError(t, err)
	tb1, err := compare.BuildTieBreak("tb1", onOffChart())
	require.NoError(t, err)
	tb2, err := compare.BuildTieBreak("tb2", onOffChart())
	require.NoError(t, err)

	res := match.Exhaustive(g1, g2, tb1, tb2)

	assert.Equal(t, len(g1.Atoms()), res.Score)
	assert.Equal(t, len(g1.Atoms()), len(g2.Atoms()))
}
