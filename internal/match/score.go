package match

import "github.com/comalice/scdiff/internal/compare"

// MatchedPair is one entry of matches(G1, G2, M): a labelled atom on each
// side that agree on label, with the left node mapped to the right node.
type MatchedPair struct {
	Left  compare.Atom
	Right compare.Atom
}

// MatchSet computes the set of atom pairs a mapping M actually matches
// between G1 and G2.
func MatchSet(g1, g2 *compare.Graph, m Mapping) []MatchedPair {
	var out []MatchedPair
	for _, atom := range g1.Atoms() {
		target, ok := m[atom.NodeID]
		if !ok {
			continue
		}
		if g2.HasLabel(target, atom.Label) {
			out = append(out, MatchedPair{Left: atom, Right: compare.Atom{NodeID: target, Label: atom.Label}})
		}
	}
	return out
}

// Score is |matches(G1, G2, M)|.
func Score(g1, g2 *compare.Graph, m Mapping) int {
	return len(MatchSet(g1, g2, m))
}

// Classification of a labelled atom for diff grouping and state_similarity.
type Classification int

const (
	ClassState Classification = iota
	ClassTransition
	ClassHierarchy
)

// ClassifyLabels classifies a label set as a state, transition, or
// hierarchy atom by the labels it carries.
func ClassifyLabels(labels []string) Classification {
	if len(labels) == 1 && labels[0] == "hierarchy" {
		return ClassHierarchy
	}
	for _, l := range labels {
		if l == "transition" || hasAnyPrefix(l, "trigger_", "guard_", "effect_") {
			return ClassTransition
		}
	}
	return ClassState
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if len(s) >= len(p) && s[:len(p)] == p {
			return true
		}
	}
	return false
}
