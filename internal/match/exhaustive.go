package match

import "github.com/comalice/scdiff/internal/compare"

// ExhaustiveThreshold bounds when brute-force enumeration is tractable: the
// exhaustive matcher is used only when every one of these quantities is at
// most this value.
const ExhaustiveThreshold = 10

// Eligible reports whether g1/g2 are small enough for Exhaustive.
func Eligible(g1, g2 *compare.Graph) bool {
	max := len(g1.StateIDs())
	if n := len(g2.StateIDs()); n > max {
		max = n
	}
	if n := g1.MaxParallelEdges(); n > max {
		max = n
	}
	if n := g2.MaxParallelEdges(); n > max {
		max = n
	}
	return max <= ExhaustiveThreshold
}

// Result is the outcome of running a matcher: the chosen mapping and its
// score against the full comparison graphs.
type Result struct {
	Mapping Mapping
	Score   int
	Greedy  bool
}

// Exhaustive enumerates every candidate mapping and returns the
// highest-scoring one, breaking ties with the tie-break graphs.
func Exhaustive(g1, g2, tb1, tb2 *compare.Graph) Result {
	candidates := enumerateFullMappings(g1, g2)
	if len(candidates) == 0 {
		candidates = []Mapping{{}}
	}

	cache := newMatchCache(g1, g2, len(candidates))

	best := selectArgmax(candidates, func(m Mapping) int { return cache.score(m) })
	chosen := best[0]
	if len(best) > 1 {
		tieBroken := selectArgmax(best, func(m Mapping) int { return Score(tb1, tb2, restrictToStates(m, tb1)) })
		chosen = tieBroken[0]
	}

	return Result{Mapping: chosen, Score: cache.score(chosen), Greedy: false}
}

// enumerateFullMappings builds every candidate mapping: a state mapping
// extended with every combination of per-edge-group injective mappings.
func enumerateFullMappings(g1, g2 *compare.Graph) []Mapping {
	stateMappings := enumerateInjectiveMappings(g1.StateIDs(), g2.StateIDs())

	var out []Mapping
	for _, sigma := range stateMappings {
		out = append(out, extendWithEdges(g1, g2, sigma)...)
	}
	return out
}

func extendWithEdges(g1, g2 *compare.Graph, sigma Mapping) []Mapping {
	groups1 := g1.EdgeGroups()
	groups2 := g2.EdgeGroups()

	var keys1 [][2]string
	for k := range groups1 {
		keys1 = append(keys1, k)
	}
	sortPairs(keys1)

	var perGroup [][]Mapping
	for _, k1 := range keys1 {
		a, b := k1[0], k1[1]
		sa, ok1 := sigma[a]
		sb, ok2 := sigma[b]
		if !ok1 || !ok2 {
			continue
		}
		k2 := [2]string{sa, sb}
		ids2, ok := groups2[k2]
		if !ok {
			continue
		}
		perGroup = append(perGroup, enumerateInjectiveMappings(groups1[k1], ids2))
	}

	results := []Mapping{sigma}
	for _, group := range perGroup {
		if len(group) == 0 {
			continue
		}
		var next []Mapping
		for _, r := range results {
			for _, cand := range group {
				merged, ok := merge(r, cand)
				if !ok {
					continue
				}
				next = append(next, merged)
			}
		}
		if next == nil {
			// no candidate in this group is compatible with any survivor;
			// fall back to leaving the group unmatched rather than
			// dropping the whole state mapping.
			continue
		}
		results = next
	}
	return results
}

func sortPairs(pairs [][2]string) {
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && less(pairs[j], pairs[j-1]); j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
}

func less(a, b [2]string) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

// selectArgmax returns, in original order, every candidate achieving the
// maximum of scoreFn.
func selectArgmax(candidates []Mapping, scoreFn func(Mapping) int) []Mapping {
	best := -1
	var argmax []Mapping
	for _, c := range candidates {
		s := scoreFn(c)
		switch {
		case s > best:
			best = s
			argmax = []Mapping{c}
		case s == best:
			argmax = append(argmax, c)
		}
	}
	return argmax
}

// restrictToStates drops every mapping entry whose key is not a state atom
// in the tie-break graph (the tie-break graph carries state atoms only).
func restrictToStates(m Mapping, tb *compare.Graph) Mapping {
	out := make(Mapping)
	stateIDs := make(map[string]struct{})
	for _, id := range tb.StateIDs() {
		stateIDs[id] = struct{}{}
	}
	for k, v := range m {
		if _, ok := stateIDs[k]; ok {
			out[k] = v
		}
	}
	return out
}
