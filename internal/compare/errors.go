package compare

import "fmt"

// AmbiguousLabelError reports that a graph has two nodes sharing the same
// (id, label) pair, which violates the one-atom-per-(id,label) invariant
// every downstream matcher relies on.
type AmbiguousLabelError struct {
	GraphName string
	NodeID    string
	Label     string
}

func (e *AmbiguousLabelError) Error() string {
	return fmt.Sprintf("compare: ambiguous labelled atom (%s, %s) in %s graph", e.NodeID, e.Label, e.GraphName)
}
