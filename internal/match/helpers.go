package match

import "github.com/comalice/scdiff/internal/compare"

func intersectionCount(a, b []string) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return count
}

func labelSet(atoms []compare.Atom) map[string]struct{} {
	out := make(map[string]struct{}, len(atoms))
	for _, a := range atoms {
		out[a.Label] = struct{}{}
	}
	return out
}

// potential counts atoms in A whose label appears anywhere in B.
func potential(a, b []compare.Atom) int {
	bl := labelSet(b)
	count := 0
	for _, atom := range a {
		if _, ok := bl[atom.Label]; ok {
			count++
		}
	}
	return count
}

func outgoingLabelled(g *compare.Graph, v string) []compare.Atom {
	var out []compare.Atom
	for _, e := range g.Successors(v) {
		for _, l := range g.Labels(e) {
			out = append(out, compare.Atom{NodeID: e, Label: l})
		}
	}
	return out
}

func incomingLabelled(g *compare.Graph, v string) []compare.Atom {
	var out []compare.Atom
	for _, e := range g.Predecessors(v) {
		for _, l := range g.Labels(e) {
			out = append(out, compare.Atom{NodeID: e, Label: l})
		}
	}
	return out
}

// lookAhead computes the greedy matcher's tie-break score for a
// candidate state pair (x, y).
func lookAhead(g1, g2 *compare.Graph, x, y string) int {
	outX, outY := outgoingLabelled(g1, x), outgoingLabelled(g2, y)
	inX, inY := incomingLabelled(g1, x), incomingLabelled(g2, y)
	return potential(outX, outY) + potential(outY, outX) + potential(inX, inY) + potential(inY, inX)
}

func removeString(items []string, target string) []string {
	out := items[:0:0]
	for _, it := range items {
		if it != target {
			out = append(out, it)
		}
	}
	return out
}

func filterUnmappedKeys(ids []string, m Mapping) []string {
	var out []string
	for _, id := range ids {
		if _, ok := m[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

func filterUnmappedValues(ids []string, values map[string]bool) []string {
	var out []string
	for _, id := range ids {
		if !values[id] {
			out = append(out, id)
		}
	}
	return out
}
