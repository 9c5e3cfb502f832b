// Package results persists comparison outcomes to disk as a
// human-diffable YAML document the CLI's list/matches subcommands can
// re-read.
package results

import (
	"sort"

	"github.com/comalice/scdiff/internal/diffing"
)

// MatchEntry is one matched node pair and the labels they agree on.
type MatchEntry struct {
	Left   string   `yaml:"left"`
	Right  string   `yaml:"right"`
	Labels []string `yaml:"labels"`
}

// AtomEntry is one unmatched labelled atom (an addition or a deletion).
type AtomEntry struct {
	NodeID string   `yaml:"node_id"`
	Labels []string `yaml:"labels"`
}

// Record is the persisted form of one pairwise comparison.
type Record struct {
	PathA string `yaml:"path_a"`
	PathB string `yaml:"path_b"`

	Matches   []MatchEntry `yaml:"matches"`
	Additions []AtomEntry  `yaml:"additions"`
	Deletions []AtomEntry  `yaml:"deletions"`

	Similarity        float64 `yaml:"similarity"`
	SingleSimilarity0 float64 `yaml:"single_similarity_0"`
	SingleSimilarity1 float64 `yaml:"single_similarity_1"`
	MaxSimilarity     float64 `yaml:"max_similarity"`
	StateSimilarity   float64 `yaml:"state_similarity"`

	IsGreedy bool `yaml:"is_greedy"`
}

// FromDiff converts a diff and its similarity metrics into the persisted
// Record shape, identifying the compared pair by their source paths.
func FromDiff(pathA, pathB string, diff diffing.Diff, sim diffing.Similarities, isGreedy bool) Record {
	r := Record{
		PathA:             pathA,
		PathB:             pathB,
		Similarity:        sim.Similarity,
		SingleSimilarity0: sim.SingleSimilarity0,
		SingleSimilarity1: sim.SingleSimilarity1,
		MaxSimilarity:     sim.MaxSimilarity,
		StateSimilarity:   sim.StateSimilarity,
		IsGreedy:          isGreedy,
	}

	for _, pair := range diff.SortedPairs() {
		r.Matches = append(r.Matches, MatchEntry{Left: pair.Left, Right: pair.Right, Labels: sortedLabelSet(diff.Matches[pair])})
	}
	r.Additions = atomEntries(diff.Additions)
	r.Deletions = atomEntries(diff.Deletions)
	return r
}

func atomEntries(m map[string]map[string]struct{}) []AtomEntry {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]AtomEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, AtomEntry{NodeID: id, Labels: sortedLabelSet(m[id])})
	}
	return out
}

func sortedLabelSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
