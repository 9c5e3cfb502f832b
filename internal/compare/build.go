package compare

import "github.com/comalice/scdiff/internal/statechart"

// Build lowers a canonical statechart into its full labelled comparison
// graph: state, transition and hierarchy atoms with their labels and
// incidence edges.
func Build(name string, c *statechart.Chart) (*Graph, error) {
	g := newGraph(name)

	if err := addStateAtoms(g, c); err != nil {
		return nil, err
	}
	if err := addTransitionAtoms(g, c); err != nil {
		return nil, err
	}
	if err := addHierarchyAtoms(g, c); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildTieBreak lowers a canonical statechart into the small tie-break
// graph: state atoms only, labelled with "state" and "name_<state-name>".
func BuildTieBreak(name string, c *statechart.Chart) (*Graph, error) {
	g := newGraph(name)
	for _, s := range c.PreOrderStates() {
		if err := g.addAtom(s.ID, StateNode, "", ""); err != nil {
			return nil, err
		}
		g.addLabel(s.ID, "state")
		g.addLabel(s.ID, "name_"+s.Name)
	}
	return g, nil
}

func addStateAtoms(g *Graph, c *statechart.Chart) error {
	for _, s := range c.PreOrderStates() {
		if err := g.addAtom(s.ID, StateNode, "", ""); err != nil {
			return err
		}
		g.addLabel(s.ID, "state")
		if s.Initial && s.Kind == statechart.Normal {
			g.addLabel(s.ID, "initial")
		}
		if s.Kind == statechart.Final {
			g.addLabel(s.ID, "final")
		}
		if s.Kind == statechart.Choice {
			g.addLabel(s.ID, "choice")
		}
		if s.Composite() {
			g.addLabel(s.ID, "composite")
		}
		if s.Orthogonal() {
			g.addLabel(s.ID, "orthogonal")
		}
		if s.Parent != nil && s.Parent.History != statechart.HistoryNone {
			g.addLabel(s.ID, "history")
			switch s.Parent.History {
			case statechart.HistoryShallow:
				g.addLabel(s.ID, "shallow_history")
			case statechart.HistoryDeep:
				g.addLabel(s.ID, "deep_history")
			}
		}
	}
	return nil
}

func addTransitionAtoms(g *Graph, c *statechart.Chart) error {
	for _, t := range c.AllTransitions() {
		if err := g.addAtom(t.ID, TransitionNode, t.SourceID, t.TargetID); err != nil {
			return err
		}
		g.addLabel(t.ID, "transition")
		for _, trigger := range t.Spec.SortedTriggers() {
			g.addLabel(t.ID, "trigger_"+trigger)
		}
		for _, effect := range t.Spec.SortedEffects() {
			g.addLabel(t.ID, "effect_"+effect)
		}
		if guard := stripWhitespace(t.Spec.Guard); guard != "" {
			g.addLabel(t.ID, "guard_"+guard)
		}
		g.addIncidence(t.SourceID, t.ID)
		g.addIncidence(t.ID, t.TargetID)
	}
	return nil
}

func addHierarchyAtoms(g *Graph, c *statechart.Chart) error {
	for _, s1 := range c.PreOrderStates() {
		for _, region := range s1.Children {
			for _, s2 := range region.Children {
				id := s1.ID + s2.ID
				if err := g.addAtom(id, HierarchyNode, s1.ID, s2.ID); err != nil {
					return err
				}
				g.addLabel(id, "hierarchy")
				g.addIncidence(s1.ID, id)
				g.addIncidence(id, s2.ID)
			}
		}
	}
	return nil
}

func stripWhitespace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
