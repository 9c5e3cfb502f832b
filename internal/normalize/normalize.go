// Package normalize implements the rewriting pipeline that turns a parsed
// statechart into its canonical form: unnecessary nesting collapsed, unreachable states
// pruned, entry/exit actions folded into transition effects, duplicate
// transitions removed, and time-unit triggers put in a single normal form.
package normalize

import "github.com/comalice/scdiff/internal/statechart"

// Report records what each pass changed, for callers that want to explain
// a normalisation (or just assert on it in tests).
type Report struct {
	CollapsedWrapperStates        []string
	UnreachableStates             []string
	DiscardedDuplicateTransitions []string
}

// Run applies all five passes, in order, to a clone of c and returns the
// canonical chart and a report of what was removed or collapsed. c itself
// is never mutated.
func Run(c *statechart.Chart) (*statechart.Chart, *Report, error) {
	canonical := c.Clone()

	collapsed, err := removeUnnecessaryNesting(canonical)
	if err != nil {
		return nil, nil, err
	}
	unreachable := removeUnreachableStates(canonical)
	convertEntryExitActions(canonical)
	discarded := removeDuplicateTransitions(canonical)
	if err := normalizeTimeUnits(canonical); err != nil {
		return nil, nil, err
	}

	return canonical, &Report{
		CollapsedWrapperStates:        collapsed,
		UnreachableStates:             unreachable,
		DiscardedDuplicateTransitions: discarded,
	}, nil
}
