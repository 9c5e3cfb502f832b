package scdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/scdiff"
	"github.com/comalice/scdiff/internal/statechart"
	"github.com/comalice/scdiff/testutil"
)

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

func TestCompareIdenticalChartsAreFullySimilar(t *testing.T) {
	res, err := scdiff.Compare(onOffChart(), onOffChart())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Similarity, 1e-9)
	assert.False(t, res.IsGreedy)
}

func TestCompareSuperSetAddition(t *testing.T) {
	res, err := scdiff.Compare(onOffChart(), onOffMidChart())
	require.NoError(t, err)
	assert.InDelta(t, 14.0/17.0, res.Similarity, 1e-9)
	assert.InDelta(t, 1.0, res.SingleSimilarity0, 1e-9)
	assert.Empty(t, res.Diff.Deletions)
}

func TestCompareForceGreedyAgreesWithExhaustiveOnThisInput(t *testing.T) {
	exhaustive, err := scdiff.Compare(onOffChart(), onOffMidChart())
	require.NoError(t, err)
	greedy, err := scdiff.Compare(onOffChart(), onOffMidChart(), scdiff.WithForceGreedy())
	require.NoError(t, err)

	assert.True(t, greedy.IsGreedy)
	assert.False(t, exhaustive.IsGreedy)
	assert.InDelta(t, exhaustive.Similarity, greedy.Similarity, 1e-9)
}

func TestNormaliseCollapsesUnnecessaryNesting(t *testing.T) {
	b := testutil.NewChart()
	root := b.RootRegion("r0", statechart.HistoryNone)
	wrapper := root.State("wrapper", "Wrapper", statechart.Normal, true)
	wrapper.Region("r1", statechart.HistoryNone).State("inner", "Inner", statechart.Normal, false)
	c := b.Build()

	canonical, report, err := scdiff.Normalise(c)
	require.NoError(t, err)
	assert.NotContains(t, canonical.StatesByID, "wrapper")
	assert.Contains(t, canonical.StatesByID, "inner")
	assert.NotEmpty(t, report.CollapsedWrapperStates)
}
