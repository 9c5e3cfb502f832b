package normalize

import "fmt"

// StructuralError reports that the hierarchy violated one of the data
// model's invariants partway through normalisation: a node
// with the wrong kind of parent, a region with no state parent and no root
// parent, and so on. It is always a programming error in the upstream
// parser or builder, never a property of a legitimately odd but
// well-formed statechart.
type StructuralError struct {
	Pass   string
	NodeID string
	Detail string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural integrity failure in %s at %q: %s", e.Pass, e.NodeID, e.Detail)
}

// UnknownTimeUnitError reports a trigger of the form "after N <unit>" whose
// unit is not one of ns/ms/s. The matching grammar only recognises those
// three units, so this can only be reached if a future caller widens the
// grammar without updating the conversion table — a programming error, not
// a malformed-input case callers are expected to handle.
type UnknownTimeUnitError struct {
	Trigger string
	Unit    string
}

func (e *UnknownTimeUnitError) Error() string {
	return fmt.Sprintf("unknown time unit %q in trigger %q", e.Unit, e.Trigger)
}
