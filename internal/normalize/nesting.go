package normalize

import (
	"sort"

	"github.com/comalice/scdiff/internal/statechart"
)

// removeUnnecessaryNesting eliminates single-region wrapper states: a state
// G with exactly one child region R which in turn has exactly one child
// state S. G contributes nothing a plain state couldn't, so S is spliced
// directly into G's grandparent region and G (with R) is discarded.
//
// The hierarchy is walked in a pre-order snapshot taken before any
// mutation; nodes already consumed by an earlier collapse in the same pass
// are skipped when encountered later in the snapshot. The top-level region
// (the one whose parent is the Root) is never collapsed away, even if it
// has exactly one state child.
func removeUnnecessaryNesting(c *statechart.Chart) ([]string, error) {
	snapshot := c.PreOrderStates()
	var collapsed []string

	for _, s := range snapshot {
		if _, stillPresent := c.StatesByID[s.ID]; !stillPresent {
			continue
		}
		r := s.Parent
		if r == nil {
			return nil, &StructuralError{Pass: "remove-unnecessary-nesting", NodeID: s.ID, Detail: "state has no parent region"}
		}
		if len(r.Children) != 1 {
			continue
		}
		if r.ParentIsRoot {
			continue
		}
		g := r.ParentState
		if g == nil {
			return nil, &StructuralError{Pass: "remove-unnecessary-nesting", NodeID: r.ID, Detail: "region parent is neither root nor state"}
		}
		if g.Orthogonal() {
			continue
		}
		gr := g.Parent
		if gr == nil {
			return nil, &StructuralError{Pass: "remove-unnecessary-nesting", NodeID: g.ID, Detail: "wrapper state has no parent region"}
		}

		c.RewriteTransitionEndpoint(g.ID, s.ID)
		s.Initial = g.Initial
		s.Specs = append(s.Specs, g.Specs...)

		c.DetachState(s)
		c.DetachState(g)
		delete(c.RegionsByID, r.ID)
		c.Reparent(s, gr)

		collapsed = append(collapsed, g.ID)
	}

	sort.Strings(collapsed)
	return collapsed, nil
}
