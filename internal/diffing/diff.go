// Package diffing assembles a matcher's mapping into the grouped
// matches/additions/deletions diff and the similarity metrics that make up
// a comparison's externally visible result.
package diffing

import (
	"sort"

	"github.com/comalice/scdiff/internal/compare"
	"github.com/comalice/scdiff/internal/match"
)

// Pair identifies a matched node on each side of a comparison.
type Pair struct {
	Left, Right string
}

// Diff groups labelled atoms by what the matcher decided about them:
// matched, added, or deleted.
type Diff struct {
	Matches   map[Pair]map[string]struct{}
	Additions map[string]map[string]struct{}
	Deletions map[string]map[string]struct{}
}

// Similarities holds the five pairwise similarity metrics.
type Similarities struct {
	Similarity        float64
	SingleSimilarity0 float64
	SingleSimilarity1 float64
	MaxSimilarity     float64
	StateSimilarity   float64
}

// Assemble builds the diff and similarity metrics for a chosen mapping.
func Assemble(g1, g2 *compare.Graph, m match.Mapping) (Diff, Similarities) {
	matchedPairs := match.MatchSet(g1, g2, m)

	diff := Diff{
		Matches:   make(map[Pair]map[string]struct{}),
		Additions: make(map[string]map[string]struct{}),
		Deletions: make(map[string]map[string]struct{}),
	}

	matchedLeft := make(map[string]map[string]struct{})
	for _, mp := range matchedPairs {
		pair := Pair{Left: mp.Left.NodeID, Right: mp.Right.NodeID}
		if diff.Matches[pair] == nil {
			diff.Matches[pair] = make(map[string]struct{})
		}
		diff.Matches[pair][mp.Left.Label] = struct{}{}

		if matchedLeft[mp.Left.NodeID] == nil {
			matchedLeft[mp.Left.NodeID] = make(map[string]struct{})
		}
		matchedLeft[mp.Left.NodeID][mp.Left.Label] = struct{}{}
	}

	matchedRight := make(map[string]map[string]struct{})
	for pair, labels := range diff.Matches {
		if matchedRight[pair.Right] == nil {
			matchedRight[pair.Right] = make(map[string]struct{})
		}
		for l := range labels {
			matchedRight[pair.Right][l] = struct{}{}
		}
	}

	for _, atom := range g2.Atoms() {
		if _, ok := matchedRight[atom.NodeID][atom.Label]; ok {
			continue
		}
		if diff.Additions[atom.NodeID] == nil {
			diff.Additions[atom.NodeID] = make(map[string]struct{})
		}
		diff.Additions[atom.NodeID][atom.Label] = struct{}{}
	}

	for _, atom := range g1.Atoms() {
		if _, ok := matchedLeft[atom.NodeID][atom.Label]; ok {
			continue
		}
		if diff.Deletions[atom.NodeID] == nil {
			diff.Deletions[atom.NodeID] = make(map[string]struct{})
		}
		diff.Deletions[atom.NodeID][atom.Label] = struct{}{}
	}

	return diff, similarities(g1, g2, matchedPairs)
}

func similarities(g1, g2 *compare.Graph, matched []match.MatchedPair) Similarities {
	score := len(matched)
	l1 := len(g1.Atoms())
	l2 := len(g2.Atoms())

	var stateMatches, stateAtoms1, stateAtoms2 int
	for _, mp := range matched {
		if isStateAtomLabel(mp.Left.Label) {
			stateMatches++
		}
	}
	for _, a := range g1.Atoms() {
		if isStateAtomLabel(a.Label) {
			stateAtoms1++
		}
	}
	for _, a := range g2.Atoms() {
		if isStateAtomLabel(a.Label) {
			stateAtoms2++
		}
	}

	s := Similarities{
		Similarity:        ratio(2*score, l1+l2),
		SingleSimilarity0: ratio(score, l1),
		SingleSimilarity1: ratio(score, l2),
		StateSimilarity:   ratio(2*stateMatches, stateAtoms1+stateAtoms2),
	}
	if s.SingleSimilarity0 > s.SingleSimilarity1 {
		s.MaxSimilarity = s.SingleSimilarity0
	} else {
		s.MaxSimilarity = s.SingleSimilarity1
	}
	return s
}

// isStateAtomLabel classifies a single label the way ClassifyLabels
// classifies a label set, for the purpose of state_similarity's per-atom
// filter: a label
// belongs to a state atom unless it marks the atom as a transition or
// hierarchy atom.
func isStateAtomLabel(label string) bool {
	switch match.ClassifyLabels([]string{label}) {
	case match.ClassState:
		return true
	default:
		return false
	}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// SortedPairs returns a diff's match pairs in a deterministic order, for
// rendering or persistence.
func (d Diff) SortedPairs() []Pair {
	out := make([]Pair, 0, len(d.Matches))
	for p := range d.Matches {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].Right < out[j].Right
	})
	return out
}
