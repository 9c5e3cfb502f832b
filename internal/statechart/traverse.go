package statechart

// PreOrderStates returns every state reachable from the root in pre-order:
// a state before its descendants, descendants of one region before the
// next sibling region. The normaliser's nesting-removal pass needs this
// exact order captured as a snapshot before it starts mutating the
// hierarchy (spec: "iterate over a snapshot of the pre-order node list
// taken before mutation").
func (c *Chart) PreOrderStates() []*State {
	var out []*State
	var walkRegion func(r *Region)
	var walkState func(s *State)

	walkState = func(s *State) {
		out = append(out, s)
		for _, r := range s.Children {
			walkRegion(r)
		}
	}
	walkRegion = func(r *Region) {
		for _, s := range r.Children {
			walkState(s)
		}
	}

	for _, r := range c.Root.Children {
		walkRegion(r)
	}
	return out
}

// GrandchildStates returns the states one level below a state's own child
// regions: for a composite or orthogonal state C, its substates.
func GrandchildStates(s *State) []*State {
	var out []*State
	for _, r := range s.Children {
		out = append(out, r.Children...)
	}
	return out
}
