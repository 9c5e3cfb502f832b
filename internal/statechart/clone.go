package statechart

// Clone returns a deep copy of the chart: every Region, State and
// Transition is duplicated and the copy's pointers are relinked among the
// copies, never the original. Normalisation passes operate on a Clone so
// that a caller holding the pre-normalisation Chart never observes a
// mutation.
func (c *Chart) Clone() *Chart {
	out := NewChart()
	regionCopies := make(map[*Region]*Region, len(c.RegionsByID))
	stateCopies := make(map[*State]*State, len(c.StatesByID))

	var cloneState func(s *State) *State
	var cloneRegion func(r *Region) *Region

	cloneRegion = func(r *Region) *Region {
		if rc, ok := regionCopies[r]; ok {
			return rc
		}
		rc := &Region{ID: r.ID, History: r.History, ParentIsRoot: r.ParentIsRoot}
		regionCopies[r] = rc
		out.RegionsByID[rc.ID] = rc
		for _, child := range r.Children {
			cc := cloneState(child)
			cc.Parent = rc
			rc.Children = append(rc.Children, cc)
		}
		return rc
	}

	cloneState = func(s *State) *State {
		if sc, ok := stateCopies[s]; ok {
			return sc
		}
		sc := &State{ID: s.ID, Name: s.Name, Kind: s.Kind, Initial: s.Initial}
		for _, spec := range s.Specs {
			sc.Specs = append(sc.Specs, spec.clone())
		}
		stateCopies[s] = sc
		out.StatesByID[sc.ID] = sc
		for _, child := range s.Children {
			rc := cloneRegion(child)
			rc.ParentState = sc
			sc.Children = append(sc.Children, rc)
		}
		return sc
	}

	for _, region := range c.Root.Children {
		rc := cloneRegion(region)
		rc.ParentIsRoot = true
		out.Root.Children = append(out.Root.Children, rc)
	}

	for source, transitions := range c.Transitions {
		for _, t := range transitions {
			out.Transitions[source] = append(out.Transitions[source], &Transition{
				ID:       t.ID,
				SourceID: t.SourceID,
				TargetID: t.TargetID,
				Spec:     t.Spec.clone(),
			})
		}
	}

	return out
}
