package normalize

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/comalice/scdiff/internal/statechart"
)

var timeTriggerPattern = regexp.MustCompile(`^after\s*(\d+)\s*(ns|ms|s)$`)

// normalizeTimeUnits rewrites every trigger of the form "after N ns/ms/s"
// into the canonical "after N' ns", so that e.g. "after 1 ms" on one
// statechart and "after 1000000 ns" on another compare as the identical
// labelled atom.
func normalizeTimeUnits(c *statechart.Chart) error {
	for _, t := range c.AllTransitions() {
		if len(t.Spec.Triggers) == 0 {
			continue
		}
		rewritten := make(map[string]struct{}, len(t.Spec.Triggers))
		for trigger := range t.Spec.Triggers {
			match := timeTriggerPattern.FindStringSubmatch(trigger)
			if match == nil {
				rewritten[trigger] = struct{}{}
				continue
			}
			amount, err := strconv.ParseInt(match[1], 10, 64)
			if err != nil {
				return fmt.Errorf("trigger %q: %w", trigger, err)
			}
			nanos, err := toNanoseconds(amount, match[2])
			if err != nil {
				return err
			}
			rewritten[fmt.Sprintf("after %d ns", nanos)] = struct{}{}
		}
		t.Spec.Triggers = rewritten
	}
	return nil
}

func toNanoseconds(amount int64, unit string) (int64, error) {
	switch unit {
	case "ns":
		return amount, nil
	case "ms":
		return amount * 1_000_000, nil
	case "s":
		return amount * 1_000_000_000, nil
	default:
		return 0, &UnknownTimeUnitError{Trigger: fmt.Sprintf("after %d %s", amount, unit), Unit: unit}
	}
}
