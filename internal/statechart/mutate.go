package statechart

// DetachState removes a state from its parent region's child list and from
// the chart's id index. It does not touch incident transitions; callers
// that need those removed or rewritten do so separately (see
// internal/normalize).
func (c *Chart) DetachState(s *State) {
	if s.Parent != nil {
		s.Parent.Children = removeState(s.Parent.Children, s)
	}
	delete(c.StatesByID, s.ID)
}

// DetachRegion removes a region from its parent's child list (Root or
// State) and from the chart's id index.
func (c *Chart) DetachRegion(r *Region) {
	if r.ParentIsRoot {
		c.Root.Children = removeRegion(c.Root.Children, r)
	} else if r.ParentState != nil {
		r.ParentState.Children = removeRegion(r.ParentState.Children, r)
	}
	delete(c.RegionsByID, r.ID)
}

// Reparent moves a state to become a child of a different region. The
// caller is responsible for detaching it from its previous parent first.
func (c *Chart) Reparent(s *State, newParent *Region) {
	s.Parent = newParent
	newParent.Children = append(newParent.Children, s)
}

// RemoveTransitionsTouching drops every transition whose source or target
// id is in ids, including the source-keyed buckets for removed states.
func (c *Chart) RemoveTransitionsTouching(ids map[string]struct{}) {
	for id := range ids {
		delete(c.Transitions, id)
	}
	for source, transitions := range c.Transitions {
		kept := transitions[:0:0]
		for _, t := range transitions {
			if _, gone := ids[t.TargetID]; gone {
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == 0 {
			delete(c.Transitions, source)
		} else {
			c.Transitions[source] = kept
		}
	}
}

// RewriteTransitionEndpoint replaces every occurrence of oldID as a
// transition source or target with newID, preserving transition ids and
// specifications and the declaration order within each bucket.
func (c *Chart) RewriteTransitionEndpoint(oldID, newID string) {
	if transitions, ok := c.Transitions[oldID]; ok {
		for _, t := range transitions {
			t.SourceID = newID
		}
		c.Transitions[newID] = append(c.Transitions[newID], transitions...)
		delete(c.Transitions, oldID)
	}
	for _, transitions := range c.Transitions {
		for _, t := range transitions {
			if t.TargetID == oldID {
				t.TargetID = newID
			}
		}
	}
}

func removeState(states []*State, target *State) []*State {
	out := states[:0]
	for _, s := range states {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}

func removeRegion(regions []*Region, target *Region) []*Region {
	out := regions[:0]
	for _, r := range regions {
		if r != target {
			out = append(out, r)
		}
	}
	return out
}
