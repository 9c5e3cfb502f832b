package statechart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/scdiff/internal/statechart"
)

func twoStateChart() *statechart.Chart {
	c := statechart.NewChart()
	region := &statechart.Region{ID: "r0", ParentIsRoot: true}
	c.Root.Children = append(c.Root.Children, region)
	c.RegionsByID["r0"] = region

	off := &statechart.State{ID: "off", Name: "Off", Kind: statechart.Normal, Initial: true, Parent: region}
	on := &statechart.State{ID: "on", Name: "On", Kind: statechart.Normal, Parent: region}
	region.Children = append(region.Children, off, on)
	c.StatesByID["off"] = off
	c.StatesByID["on"] = on

	spec := statechart.NewSpec([]string{"operate"}, "", nil)
	c.Transitions["off"] = []*statechart.Transition{{ID: "t1", SourceID: "off", TargetID: "on", Spec: spec}}
	c.Transitions["on"] = []*statechart.Transition{{ID: "t2", SourceID: "on", TargetID: "off", Spec: spec}}
	return c
}

func TestStateKindPredicates(t *testing.T) {
	leaf := &statechart.State{ID: "leaf"}
	assert.True(t, leaf.Leaf())
	assert.False(t, leaf.Composite())
	assert.False(t, leaf.Orthogonal())

	composite := &statechart.State{ID: "c", Children: []*statechart.Region{{ID: "r1"}}}
	assert.True(t, composite.Composite())
	assert.False(t, composite.Orthogonal())

	orthogonal := &statechart.State{ID: "o", Children: []*statechart.Region{{ID: "r1"}, {ID: "r2"}}}
	assert.True(t, orthogonal.Orthogonal())
	assert.False(t, orthogonal.Composite())
}

func TestSpecEquality(t *testing.T) {
	a := statechart.NewSpec([]string{"go", "stop"}, "x>1", []string{"beep"})
	b := statechart.NewSpec([]string{"stop", "go"}, "x>1", []string{"beep"})
	assert.True(t, a.Equal(b), "trigger/effect set order must not matter")

	c := statechart.NewSpec([]string{"go"}, "x>1", []string{"beep"})
	assert.False(t, a.Equal(c))

	d := statechart.NewSpec([]string{"go", "stop"}, "x>2", []string{"beep"})
	assert.False(t, a.Equal(d))
}

func TestChartClonePreservesStructureAndIsIndependent(t *testing.T) {
	c := twoStateChart()
	clone := c.Clone()

	require.Len(t, clone.PreOrderStates(), 2)
	assert.ElementsMatch(t, []string{"off", "on"}, idsOf(clone.PreOrderStates()))
	assert.True(t, clone.StatesByID["off"].Initial)

	// Mutating the clone must not affect the original.
	clone.StatesByID["off"].Initial = false
	assert.True(t, c.StatesByID["off"].Initial)

	clone.DetachState(clone.StatesByID["on"])
	assert.Len(t, clone.PreOrderStates(), 1)
	assert.Len(t, c.PreOrderStates(), 2)
}

func TestRootInitialStates(t *testing.T) {
	c := twoStateChart()
	initial := c.RootInitialStates()
	require.Len(t, initial, 1)
	assert.Equal(t, "off", initial[0].ID)
}

func TestAllTransitionsDeterministicOrder(t *testing.T) {
	c := twoStateChart()
	all := c.AllTransitions()
	require.Len(t, all, 2)
	assert.Equal(t, "t1", all[0].ID)
	assert.Equal(t, "t2", all[1].ID)
}

func TestValidateCatchesDanglingTransitionTarget(t *testing.T) {
	c := twoStateChart()
	c.Transitions["off"] = append(c.Transitions["off"], &statechart.Transition{ID: "bad", SourceID: "off", TargetID: "ghost"})
	assert.Error(t, c.Validate())
}

func idsOf(states []*statechart.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.ID
	}
	return out
}
