// Package testutil provides a fluent builder for constructing
// internal/statechart.Chart fixtures in tests and benchmarks, standing in
// for the real (out-of-scope) parser.
//
// The builder is fluent: RootRegion, State and Region each return a handle
// for the node just created so callers can keep nesting without
// re-looking-up ids.
package testutil

import "github.com/comalice/scdiff/internal/statechart"

// ChartBuilder accumulates a Chart under construction.
type ChartBuilder struct {
	chart *statechart.Chart
}

// NewChart starts a new, empty chart.
func NewChart() *ChartBuilder {
	return &ChartBuilder{chart: statechart.NewChart()}
}

// RootRegion adds a top-level region (child of Root) and returns a handle
// for adding states to it.
func (b *ChartBuilder) RootRegion(id string, history statechart.HistoryMode) *RegionHandle {
	r := &statechart.Region{ID: id, History: history, ParentIsRoot: true}
	b.chart.Root.Children = append(b.chart.Root.Children, r)
	b.chart.RegionsByID[id] = r
	return &RegionHandle{b: b, region: r}
}

// Transition adds a transition to the chart's transition table.
func (b *ChartBuilder) Transition(id, source, target string, spec statechart.Spec) *ChartBuilder {
	t := &statechart.Transition{ID: id, SourceID: source, TargetID: target, Spec: spec}
	b.chart.Transitions[source] = append(b.chart.Transitions[source], t)
	return b
}

// Build returns the constructed chart.
func (b *ChartBuilder) Build() *statechart.Chart { return b.chart }

// RegionHandle lets a caller populate the states of one region.
type RegionHandle struct {
	b      *ChartBuilder
	region *statechart.Region
}

// RegionID returns the id of the region this handle populates.
func (r *RegionHandle) RegionID() string { return r.region.ID }

// State adds a state to this region and returns a handle for it.
func (r *RegionHandle) State(id, name string, kind statechart.StateKind, initial bool) *StateHandle {
	s := &statechart.State{ID: id, Name: name, Kind: kind, Initial: initial, Parent: r.region}
	r.region.Children = append(r.region.Children, s)
	r.b.chart.StatesByID[id] = s
	return &StateHandle{b: r.b, state: s}
}

// StateHandle lets a caller add specs and child regions to one state.
type StateHandle struct {
	b     *ChartBuilder
	state *statechart.State
}

// Spec attaches a state specification (e.g. an entry/exit action).
func (s *StateHandle) Spec(spec statechart.Spec) *StateHandle {
	s.state.Specs = append(s.state.Specs, spec)
	return s
}

// Region adds a child region to this state (the second call makes the
// state orthogonal) and returns a handle for it.
func (s *StateHandle) Region(id string, history statechart.HistoryMode) *RegionHandle {
	r := &statechart.Region{ID: id, History: history, ParentState: s.state}
	s.state.Children = append(s.state.Children, r)
	s.b.chart.RegionsByID[id] = r
	return &RegionHandle{b: s.b, region: r}
}

// Chart returns to the top-level builder for chaining.
func (s *StateHandle) Chart() *ChartBuilder { return s.b }

// Done returns to the top-level builder for chaining (alias of Chart, read
// better after a Region/State chain than "Chart" does).
func (s *StateHandle) Done() *ChartBuilder { return s.b }

// ChartOf is a convenience for the common two-state on/off fixture family
// used across the matcher's test scenarios: a root region with the given
// states, wired with the given transitions.
func ChartOf(states []StateSpec, transitions []TransitionSpec) *statechart.Chart {
	b := NewChart()
	region := b.RootRegion("r0", statechart.HistoryNone)
	for _, st := range states {
		h := region.State(st.ID, st.Name, st.Kind, st.Initial)
		for _, spec := range st.Specs {
			h.Spec(spec)
		}
	}
	for _, tr := range transitions {
		b.Transition(tr.ID, tr.Source, tr.Target, tr.Spec)
	}
	return b.Build()
}

// StateSpec is a flat description of one top-level state, for ChartOf.
type StateSpec struct {
	ID, Name string
	Kind     statechart.StateKind
	Initial  bool
	Specs    []statechart.Spec
}

// TransitionSpec is a flat description of one transition, for ChartOf.
type TransitionSpec struct {
	ID, Source, Target string
	Spec               statechart.Spec
}
