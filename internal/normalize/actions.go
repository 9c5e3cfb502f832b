package normalize

import "github.com/comalice/scdiff/internal/statechart"

// convertEntryExitActions folds each state's entry/exit specifications into
// the effects of the transitions that enter/leave that state, then drops
// the entry/exit specifications themselves (other specifications on the
// state are left alone).
func convertEntryExitActions(c *statechart.Chart) {
	for _, s := range c.PreOrderStates() {
		var kept []statechart.Spec
		for _, spec := range s.Specs {
			switch {
			case hasTrigger(spec, "entry"):
				for _, t := range transitionsTargeting(c, s.ID) {
					mergeEffectsInto(t, spec.Effects)
				}
			case hasTrigger(spec, "exit"):
				for _, t := range c.Transitions[s.ID] {
					mergeEffectsInto(t, spec.Effects)
				}
			default:
				kept = append(kept, spec)
			}
		}
		s.Specs = kept
	}
}

func hasTrigger(spec statechart.Spec, trigger string) bool {
	_, ok := spec.Triggers[trigger]
	return ok
}

func transitionsTargeting(c *statechart.Chart, stateID string) []*statechart.Transition {
	var out []*statechart.Transition
	for _, t := range c.AllTransitions() {
		if t.TargetID == stateID {
			out = append(out, t)
		}
	}
	return out
}

func mergeEffectsInto(t *statechart.Transition, effects map[string]struct{}) {
	if t.Spec.Effects == nil {
		t.Spec.Effects = make(map[string]struct{}, len(effects))
	}
	for e := range effects {
		t.Spec.Effects[e] = struct{}{}
	}
}
