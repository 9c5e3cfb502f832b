package statechart

import "fmt"

// Validate performs the structural sanity checks a fixture loader or test
// builder wants before handing a Chart to the normaliser: transition
// endpoints resolve to real states, and every state is reachable from the
// root via the hierarchy. It does not attempt anything the matcher itself
// needs (the core re-derives what it needs directly from the hierarchy and
// transition table), matching the spec's non-goal that the core itself does
// not validate well-formedness beyond that.
func (c *Chart) Validate() error {
	reachable := make(map[string]struct{})
	for _, s := range c.PreOrderStates() {
		reachable[s.ID] = struct{}{}
	}
	for id := range c.StatesByID {
		if _, ok := reachable[id]; !ok {
			return fmt.Errorf("state %q is not reachable from the root via the hierarchy", id)
		}
	}
	for source, transitions := range c.Transitions {
		if _, ok := reachable[source]; !ok {
			return fmt.Errorf("transition source %q is not a state in the hierarchy", source)
		}
		for _, t := range transitions {
			if _, ok := reachable[t.TargetID]; !ok {
				return fmt.Errorf("transition %q target %q is not a state in the hierarchy", t.ID, t.TargetID)
			}
		}
	}
	return nil
}
