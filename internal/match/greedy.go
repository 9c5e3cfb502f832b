package match

import "github.com/comalice/scdiff/internal/compare"

// Greedy builds a mapping one state pair at a time.
// It is the fallback used whenever the inputs exceed the exhaustive
// matcher's size threshold.
func Greedy(g1, g2 *compare.Graph) Result {
	m := make(Mapping)
	valueSet := make(map[string]bool)

	u1 := g1.StateIDs()
	u2 := g2.StateIDs()

	for {
		remaining1 := filterUnmappedKeys(u1, m)
		remaining2 := filterUnmappedValues(u2, valueSet)
		if len(remaining1) == 0 || len(remaining2) == 0 {
			break
		}

		x, y, ok := bestStatePair(g1, g2, m, valueSet, remaining1, remaining2)
		if !ok {
			break
		}

		m[x] = y
		valueSet[y] = true

		extendEdgesIncidentTo(g1, g2, m, valueSet, x)
	}

	return Result{Mapping: m, Score: Score(g1, g2, m), Greedy: true}
}

func bestStatePair(g1, g2 *compare.Graph, m Mapping, valueSet map[string]bool, remaining1, remaining2 []string) (string, string, bool) {
	bestScore := -1.0
	var candidates [][2]string
	for _, x := range remaining1 {
		for _, y := range remaining2 {
			s := pairScore(g1, g2, m, valueSet, x, y)
			switch {
			case s > bestScore:
				bestScore = s
				candidates = [][2]string{{x, y}}
			case s == bestScore:
				candidates = append(candidates, [2]string{x, y})
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", false
	}
	chosen := candidates[0]
	if len(candidates) > 1 {
		bestLook := -1
		var lookCandidates [][2]string
		for _, c := range candidates {
			la := lookAhead(g1, g2, c[0], c[1])
			switch {
			case la > bestLook:
				bestLook = la
				lookCandidates = [][2]string{c}
			case la == bestLook:
				lookCandidates = append(lookCandidates, c)
			}
		}
		chosen = lookCandidates[0]
	}
	return chosen[0], chosen[1], true
}

// pairScore is match_count(x,y) + edges_score(predecessors) +
// edges_score(successors).
func pairScore(g1, g2 *compare.Graph, m Mapping, valueSet map[string]bool, x, y string) float64 {
	matchCount := 2 * intersectionCount(g1.Labels(x), g2.Labels(y))

	pred1 := filterOtherEndpointMapped(g1, m, nil, g1.Predecessors(x), true, false)
	pred2 := filterOtherEndpointMapped(g2, nil, valueSet, g2.Predecessors(y), false, false)
	succ1 := filterOtherEndpointMapped(g1, m, nil, g1.Successors(x), true, true)
	succ2 := filterOtherEndpointMapped(g2, nil, valueSet, g2.Successors(y), false, true)

	return float64(matchCount) + edgesScore(g1, g2, pred1, pred2) + edgesScore(g1, g2, succ1, succ2)
}

// filterOtherEndpointMapped keeps edge atoms from edges whose endpoint other
// than the one being scored is already part of the partial mapping (as a
// key, on the g1 side; as a value, on the g2 side). For a predecessor edge
// the other endpoint is its source; for a successor edge it is its target.
func filterOtherEndpointMapped(g *compare.Graph, m Mapping, valueSet map[string]bool, edges []string, isG1, otherIsTarget bool) []string {
	var out []string
	for _, e := range edges {
		src, tgt := g.SourceTarget(e)
		other := src
		if otherIsTarget {
			other = tgt
		}
		if isG1 {
			if _, ok := m[other]; ok {
				out = append(out, e)
			}
		} else {
			if valueSet[other] {
				out = append(out, e)
			}
		}
	}
	return out
}

func edgesScore(g1, g2 *compare.Graph, e1, e2 []string) float64 {
	if len(e1) == 0 || len(e2) == 0 {
		return 0
	}
	totalLabels1, totalLabels2 := 0, 0
	for _, e := range e1 {
		totalLabels1 += len(g1.Labels(e))
	}
	for _, e := range e2 {
		totalLabels2 += len(g2.Labels(e))
	}

	sum := 0.0
	for _, a := range e1 {
		la := g1.Labels(a)
		for _, b := range e2 {
			lb := g2.Labels(b)
			inter := intersectionCount(la, lb)
			sum += 2 * float64(inter) / float64(len(la)+len(lb))
		}
	}
	avg := sum / float64(len(e1)*len(e2))
	return avg * float64(totalLabels1+totalLabels2)
}

// extendEdgesIncidentTo matches, group by group, the transition and
// hierarchy atoms incident to the state just mapped, for every
// (source, target) pair whose both endpoints are now mapped.
func extendEdgesIncidentTo(g1, g2 *compare.Graph, m Mapping, valueSet map[string]bool, justMapped string) {
	groups1 := g1.EdgeGroups()
	groups2 := g2.EdgeGroups()

	var keys [][2]string
	for k := range groups1 {
		if k[0] == justMapped || k[1] == justMapped {
			keys = append(keys, k)
		}
	}
	sortPairs(keys)

	for _, k1 := range keys {
		a, b := k1[0], k1[1]
		sa, ok1 := m[a]
		sb, ok2 := m[b]
		if !ok1 || !ok2 {
			continue
		}
		k2 := [2]string{sa, sb}
		ids2, ok := groups2[k2]
		if !ok {
			continue
		}
		greedyExtendGroup(g1, g2, m, valueSet, groups1[k1], ids2)
	}
}

func greedyExtendGroup(g1, g2 *compare.Graph, m Mapping, valueSet map[string]bool, ids1, ids2 []string) {
	remaining1 := filterUnmappedKeys(ids1, m)
	remaining2 := filterUnmappedValues(ids2, valueSet)

	for len(remaining1) > 0 && len(remaining2) > 0 {
		bestScore := -1
		var bestPair [2]string
		found := false
		for _, e1 := range remaining1 {
			l1 := g1.Labels(e1)
			for _, e2 := range remaining2 {
				inter := intersectionCount(l1, g2.Labels(e2))
				if inter > bestScore {
					bestScore = inter
					bestPair = [2]string{e1, e2}
					found = true
				}
			}
		}
		if !found {
			break
		}
		m[bestPair[0]] = bestPair[1]
		valueSet[bestPair[1]] = true
		remaining1 = removeString(remaining1, bestPair[0])
		remaining2 = removeString(remaining2, bestPair[1])
	}
}
