package normalize

import (
	"sort"

	"github.com/comalice/scdiff/internal/statechart"
)

// removeUnreachableStates builds an auxiliary reachability graph — a
// hierarchy-initial-descent edge from every state to each of its initial
// grandchild states, plus one edge per transition —
// and removes every state not reached by a BFS from the root-initial
// states, along with every transition incident to a removed state in
// either direction.
func removeUnreachableStates(c *statechart.Chart) []string {
	adjacency := make(map[string]map[string]struct{})
	addEdge := func(from, to string) {
		if adjacency[from] == nil {
			adjacency[from] = make(map[string]struct{})
		}
		adjacency[from][to] = struct{}{}
	}

	for _, s := range c.PreOrderStates() {
		for _, grandchild := range statechart.GrandchildStates(s) {
			if grandchild.Initial {
				addEdge(s.ID, grandchild.ID)
			}
		}
	}
	for _, t := range c.AllTransitions() {
		addEdge(t.SourceID, t.TargetID)
	}

	reachable := make(map[string]struct{})
	var queue []string
	for _, s := range c.RootInitialStates() {
		if _, ok := reachable[s.ID]; !ok {
			reachable[s.ID] = struct{}{}
			queue = append(queue, s.ID)
		}
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		neighbors := make([]string, 0, len(adjacency[current]))
		for n := range adjacency[current] {
			neighbors = append(neighbors, n)
		}
		sort.Strings(neighbors)
		for _, n := range neighbors {
			if _, ok := reachable[n]; !ok {
				reachable[n] = struct{}{}
				queue = append(queue, n)
			}
		}
	}

	var unreachable []string
	for _, s := range c.PreOrderStates() {
		if _, ok := reachable[s.ID]; !ok {
			unreachable = append(unreachable, s.ID)
		}
	}
	sort.Strings(unreachable)

	removeSet := make(map[string]struct{}, len(unreachable))
	for _, id := range unreachable {
		removeSet[id] = struct{}{}
	}
	for _, id := range unreachable {
		c.DetachState(c.StatesByID[id])
	}
	c.RemoveTransitionsTouching(removeSet)

	return unreachable
}
