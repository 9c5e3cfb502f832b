package normalize

import (
	"sort"
	"strings"

	"github.com/comalice/scdiff/internal/statechart"
)

// removeDuplicateTransitions collapses transitions in the same source
// bucket that agree on (source, target, specification), keeping the first
// occurrence of each distinct value and discarding the rest.
func removeDuplicateTransitions(c *statechart.Chart) []string {
	var discarded []string
	for source, transitions := range c.Transitions {
		seen := make(map[string]struct{}, len(transitions))
		kept := transitions[:0:0]
		for _, t := range transitions {
			key := dedupKey(t)
			if _, ok := seen[key]; ok {
				discarded = append(discarded, t.ID)
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, t)
		}
		c.Transitions[source] = kept
	}
	sort.Strings(discarded)
	return discarded
}

func dedupKey(t *statechart.Transition) string {
	var b strings.Builder
	b.WriteString(t.TargetID)
	b.WriteByte('\x00')
	b.WriteString(strings.Join(t.Spec.SortedTriggers(), ","))
	b.WriteByte('\x00')
	b.WriteString(t.Spec.Guard)
	b.WriteByte('\x00')
	b.WriteString(strings.Join(t.Spec.SortedEffects(), ","))
	return b.String()
}
