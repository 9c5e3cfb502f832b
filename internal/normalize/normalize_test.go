package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/scdiff/internal/normalize"
	"github.com/comalice/scdiff/internal/statechart"
	"github.com/comalice/scdiff/testutil"
)

func TestRemoveUnnecessaryNesting(t *testing.T) {
	// root -> r0 -> Wrapper(composite) -> r1 -> Inner(leaf)
	b := testutil.NewChart()
	root := b.RootRegion("r0", statechart.HistoryNone)
	wrapper := root.State("wrapper", "Wrapper", statechart.Normal, true)
	wrapper.Spec(statechart.NewSpec(nil, "", []string{"wrapperEffect"}))
	inner := wrapper.Region("r1", statechart.HistoryNone).State("inner", "Inner", statechart.Normal, false)

	b.Transition("t1", "wrapper", "inner", statechart.NewSpec([]string{"go"}, "", nil))
	b.Transition("t2", "inner", "wrapper", statechart.NewSpec([]string{"back"}, "", nil))
	_ = inner

	chart := b.Build()
	canonical, report, err := normalize.Run(chart)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"wrapper"}, report.CollapsedWrapperStates)
	require.Contains(t, canonical.StatesByID, "inner")
	assert.NotContains(t, canonical.StatesByID, "wrapper")
	innerState := canonical.StatesByID["inner"]
	assert.True(t, innerState.Initial, "collapsed wrapper's Initial flag must transfer")
	assert.Equal(t, root.RegionID(), innerState.Parent.ID)

	var effects []string
	for _, spec := range innerState.Specs {
		effects = append(effects, spec.SortedEffects()...)
	}
	assert.Contains(t, effects, "wrapperEffect")

	// transitions referencing wrapper must now reference inner
	for _, tr := range canonical.AllTransitions() {
		assert.NotEqual(t, "wrapper", tr.SourceID)
		assert.NotEqual(t, "wrapper", tr.TargetID)
	}
}

func TestRemoveUnnecessaryNestingPreservesTopLevelRegion(t *testing.T) {
	b := testutil.NewChart()
	root := b.RootRegion("r0", statechart.HistoryNone)
	root.State("solo", "Solo", statechart.Normal, true)
	chart := b.Build()

	_, report, err := normalize.Run(chart)
	require.NoError(t, err)
	assert.Empty(t, report.CollapsedWrapperStates)
}

func TestRemoveUnreachableStates(t *testing.T) {
	b := testutil.NewChart()
	root := b.RootRegion("r0", statechart.HistoryNone)
	root.State("off", "Off", statechart.Normal, true)
	root.State("on", "On", statechart.Normal, false)
	root.State("ghost", "Ghost", statechart.Normal, false) // unreachable: no transitions in, not initial
	b.Transition("t1", "off", "on", statechart.NewSpec([]string{"go"}, "", nil))
	chart := b.Build()

	canonical, report, err := normalize.Run(chart)
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost"}, report.UnreachableStates)
	assert.NotContains(t, canonical.StatesByID, "ghost")
}

func TestConvertEntryExitActions(t *testing.T) {
	b := testutil.NewChart()
	root := b.RootRegion("r0", statechart.HistoryNone)
	off := root.State("off", "Off", statechart.Normal, true)
	off.Spec(statechart.NewSpec([]string{"entry"}, "", []string{"lampOn"}))
	root.State("on", "On", statechart.Normal, false)
	b.Transition("t1", "on", "off", statechart.NewSpec([]string{"go"}, "", nil))
	chart := b.Build()

	canonical, _, err := normalize.Run(chart)
	require.NoError(t, err)

	tr := canonical.Transitions["on"][0]
	assert.Contains(t, tr.Spec.Effects, "lampOn")
	assert.Empty(t, canonical.StatesByID["off"].Specs, "entry spec must be removed after conversion")
}

func TestRemoveDuplicateTransitions(t *testing.T) {
	b := testutil.NewChart()
	root := b.RootRegion("r0", statechart.HistoryNone)
	root.State("off", "Off", statechart.Normal, true)
	root.State("on", "On", statechart.Normal, false)
	spec := statechart.NewSpec([]string{"go"}, "", nil)
	b.Transition("t1", "off", "on", spec)
	b.Transition("t2", "off", "on", spec)
	chart := b.Build()

	canonical, report, err := normalize.Run(chart)
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, report.DiscardedDuplicateTransitions)
	assert.Len(t, canonical.Transitions["off"], 1)
	assert.Equal(t, "t1", canonical.Transitions["off"][0].ID)
}

func TestNormalizeTimeUnits(t *testing.T) {
	b := testutil.NewChart()
	root := b.RootRegion("r0", statechart.HistoryNone)
	root.State("off", "Off", statechart.Normal, true)
	root.State("on", "On", statechart.Normal, false)
	b.Transition("t1", "off", "on", statechart.NewSpec([]string{"after 1 ms"}, "", nil))
	chart := b.Build()

	canonical, _, err := normalize.Run(chart)
	require.NoError(t, err)
	_, ok := canonical.Transitions["off"][0].Spec.Triggers["after 1000000 ns"]
	assert.True(t, ok)
}

func TestTimeUnitsAgreeRegardlessOfSourceUnit(t *testing.T) {
	msChart := testutil.ChartOf(
		[]testutil.StateSpec{{ID: "off", Name: "Off", Kind: statechart.Normal, Initial: true}, {ID: "on", Name: "On", Kind: statechart.Normal}},
		[]testutil.TransitionSpec{{ID: "t1", Source: "off", Target: "on", Spec: statechart.NewSpec([]string{"after 1 ms"}, "", nil)}},
	)
	nsChart := testutil.ChartOf(
		[]testutil.StateSpec{{ID: "off", Name: "Off", Kind: statechart.Normal, Initial: true}, {ID: "on", Name: "On", Kind: statechart.Normal}},
		[]testutil.TransitionSpec{{ID: "t1", Source: "off", Target: "on", Spec: statechart.NewSpec([]string{"after 1000000 ns"}, "", nil)}},
	)

	canonicalMs, _, err := normalize.Run(msChart)
	require.NoError(t, err)
	canonicalNs, _, err := normalize.Run(nsChart)
	require.NoError(t, err)

	assert.Equal(t, canonicalMs.Transitions["off"][0].Spec.SortedTriggers(), canonicalNs.Transitions["off"][0].Spec.SortedTriggers())
}

func TestNormalizeIsIdempotent(t *testing.T) {
	b := testutil.NewChart()
	root := b.RootRegion("r0", statechart.HistoryNone)
	root.State("off", "Off", statechart.Normal, true)
	root.State("on", "On", statechart.Normal, false)
	b.Transition("t1", "off", "on", statechart.NewSpec([]string{"after 1 ms"}, "", nil))
	chart := b.Build()

	once, _, err := normalize.Run(chart)
	require.NoError(t, err)
	twice, _, err := normalize.Run(once)
	require.NoError(t, err)

	assert.ElementsMatch(t, idsOf(once), idsOf(twice))
	assert.Equal(t, once.Transitions["off"][0].Spec.SortedTriggers(), twice.Transitions["off"][0].Spec.SortedTriggers())
}

func idsOf(c *statechart.Chart) []string {
	var out []string
	for _, s := range c.PreOrderStates() {
		out = append(out, s.ID)
	}
	return out
}
