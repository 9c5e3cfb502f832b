// Package statechart defines the foundational data structures for the
// plagiarism-detection engine: a rooted hierarchy of regions and states plus
// a transition table, as described by the engine's normalisation and
// matching components.
//
// Statechart values are produced by an external parser (out of scope here).
// The mutation helpers in mutate.go change their receiver in place; the
// normaliser applies them only to a Clone, so a caller can keep comparing
// against the original after normalising a copy.
package statechart

import "sort"

// HistoryMode is the history annotation carried by a Region.
type HistoryMode string

const (
	HistoryNone    HistoryMode = "none"
	HistoryShallow HistoryMode = "shallow"
	HistoryDeep    HistoryMode = "deep"
)

// StateKind distinguishes the state subtypes the matcher cares about.
type StateKind string

const (
	Normal StateKind = "normal"
	Final  StateKind = "final"
	Choice StateKind = "choice"
)

// RootID is the fixed id of the single Root node in every Chart.
const RootID = "root"

// Spec is the (triggers, guard, effects) tuple attached to a Transition or,
// via a State's Specs, to a state's entry/exit/internal behaviour.
//
// Guard is the empty string when absent: the source language treats an
// empty guard as falsy, and this type mirrors that rather than using a
// pointer, since "no guard" and "empty-string guard" are never
// distinguished anywhere in the engine.
type Spec struct {
	Triggers map[string]struct{}
	Guard    string
	Effects  map[string]struct{}
}

// NewSpec builds a Spec from trigger/effect slices, deduplicating into sets.
func NewSpec(triggers []string, guard string, effects []string) Spec {
	s := Spec{Triggers: make(map[string]struct{}, len(triggers)), Guard: guard, Effects: make(map[string]struct{}, len(effects))}
	for _, t := range triggers {
		s.Triggers[t] = struct{}{}
	}
	for _, e := range effects {
		s.Effects[e] = struct{}{}
	}
	return s
}

// SortedTriggers returns the triggers in ascending lexical order, for
// deterministic iteration.
func (s Spec) SortedTriggers() []string { return sortedKeys(s.Triggers) }

// SortedEffects returns the effects in ascending lexical order.
func (s Spec) SortedEffects() []string { return sortedKeys(s.Effects) }

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether two specifications are interchangeable: same
// trigger set, same guard text, same effect set. The normaliser's
// duplicate-transition pass does not call it; it compares the same three
// parts through its own string key.
func (s Spec) Equal(other Spec) bool {
	if s.Guard != other.Guard {
		return false
	}
	return setEqual(s.Triggers, other.Triggers) && setEqual(s.Effects, other.Effects)
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// clone returns a deep copy of the Spec.
func (s Spec) clone() Spec {
	c := Spec{Triggers: make(map[string]struct{}, len(s.Triggers)), Guard: s.Guard, Effects: make(map[string]struct{}, len(s.Effects))}
	for k := range s.Triggers {
		c.Triggers[k] = struct{}{}
	}
	for k := range s.Effects {
		c.Effects[k] = struct{}{}
	}
	return c
}

// State is a node in the hierarchy whose parent is always a Region.
type State struct {
	ID      string
	Name    string
	Kind    StateKind
	Initial bool
	Specs   []Spec
	Parent  *Region
	// Children are the state's own child regions: zero for a leaf state,
	// exactly one for a composite state, more than one for an orthogonal
	// state (invariant 5 of the spec's data model).
	Children []*Region
}

// Composite reports whether the state has exactly one child region.
func (s *State) Composite() bool { return len(s.Children) == 1 }

// Orthogonal reports whether the state has more than one child region.
func (s *State) Orthogonal() bool { return len(s.Children) > 1 }

// Leaf reports whether the state has no child regions.
func (s *State) Leaf() bool { return len(s.Children) == 0 }

// Region is a container of sibling States, itself a child of either the
// Root or a State.
type Region struct {
	ID           string
	History      HistoryMode
	ParentState  *State // nil when the region hangs directly off the Root
	ParentIsRoot bool
	Children     []*State
}

// Root is the single entry point of the hierarchy, id "root".
type Root struct {
	Children []*Region
}

// Transition is a directed, labelled edge between two states.
type Transition struct {
	ID       string
	SourceID string
	TargetID string
	Spec     Spec
}

// Chart is a complete statechart: the rooted hierarchy plus the transition
// table, with id-indexed side tables for O(1) lookup during normalisation
// and comparison-graph construction.
type Chart struct {
	Root        *Root
	StatesByID  map[string]*State
	RegionsByID map[string]*Region
	// Transitions is keyed by source state id; order within each bucket is
	// the order transitions were declared, and several normalisation passes
	// rely on that order being preserved.
	Transitions map[string][]*Transition
}

// NewChart returns an empty Chart ready to be populated by a builder or
// fixture loader.
func NewChart() *Chart {
	return &Chart{
		Root:        &Root{},
		StatesByID:  make(map[string]*State),
		RegionsByID: make(map[string]*Region),
		Transitions: make(map[string][]*Transition),
	}
}

// AllTransitions returns every transition across every source bucket, in a
// deterministic order: buckets sorted by source id, transitions within a
// bucket in declaration order.
func (c *Chart) AllTransitions() []*Transition {
	sources := sortedKeys(mapKeysToSet(c.Transitions))
	var out []*Transition
	for _, src := range sources {
		out = append(out, c.Transitions[src]...)
	}
	return out
}

func mapKeysToSet(m map[string][]*Transition) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

// RootInitialStates returns the state-children of the root region(s) that
// are marked Initial, sorted by id for determinism.
func (c *Chart) RootInitialStates() []*State {
	var out []*State
	for _, region := range c.Root.Children {
		for _, st := range region.Children {
			if st.Initial {
				out = append(out, st)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
