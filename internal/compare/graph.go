// Package compare lowers a canonical statechart into the labelled directed
// multigraph used by the matcher: states, transitions and hierarchy
// relations all become nodes carrying a set of string labels, with plain
// incidence edges recording which state a transition or hierarchy relation
// runs between.
package compare

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// NodeKind classifies an atom node by what it represents in the source
// statechart.
type NodeKind int

const (
	StateNode NodeKind = iota
	TransitionNode
	HierarchyNode
)

// Atom is a single (node_id, label) pair, the unit the matcher scores.
type Atom struct {
	NodeID string
	Label  string
}

// Graph is a labelled directed multigraph projected from one canonical
// statechart. Node identity is carried by string atom ids; the underlying
// gonum graph exists only to hold incidence edges between atoms (a
// transition or hierarchy node and the state(s) it touches).
type Graph struct {
	Name string

	g      *simple.DirectedGraph
	idOf   map[string]int64
	nodeOf map[int64]string

	kind   map[string]NodeKind
	labels map[string]map[string]struct{}

	// sourceOf/targetOf hold the incident state ids for transition and
	// hierarchy atoms; unset (empty string) for state atoms.
	sourceOf map[string]string
	targetOf map[string]string

	stateIDs      []string
	transitionIDs []string
	hierarchyIDs  []string
}

func newGraph(name string) *Graph {
	return &Graph{
		Name:     name,
		g:        simple.NewDirectedGraph(),
		idOf:     make(map[string]int64),
		nodeOf:   make(map[int64]string),
		kind:     make(map[string]NodeKind),
		labels:   make(map[string]map[string]struct{}),
		sourceOf: make(map[string]string),
		targetOf: make(map[string]string),
	}
}

// gonumNode returns the int64 node id for atom id, creating the underlying
// gonum node the first time it is seen.
func (g *Graph) gonumNode(id string) int64 {
	if n, ok := g.idOf[id]; ok {
		return n
	}
	n := g.g.NewNode()
	g.g.AddNode(n)
	g.idOf[id] = n.ID()
	g.nodeOf[n.ID()] = id
	return n.ID()
}

// addAtom registers id as a node of the given kind, failing if id was
// already used for an atom of a different kind or a different incident
// (source, target) pair.
func (g *Graph) addAtom(id string, k NodeKind, source, target string) error {
	if existing, ok := g.kind[id]; ok {
		if existing != k {
			return &AmbiguousLabelError{GraphName: g.Name, NodeID: id, Label: "<kind mismatch>"}
		}
		if g.sourceOf[id] != source || g.targetOf[id] != target {
			return &AmbiguousLabelError{GraphName: g.Name, NodeID: id, Label: "<incidence mismatch>"}
		}
		return nil
	}
	g.kind[id] = k
	g.sourceOf[id] = source
	g.targetOf[id] = target
	g.labels[id] = make(map[string]struct{})
	g.gonumNode(id)

	switch k {
	case StateNode:
		g.stateIDs = append(g.stateIDs, id)
	case TransitionNode:
		g.transitionIDs = append(g.transitionIDs, id)
	case HierarchyNode:
		g.hierarchyIDs = append(g.hierarchyIDs, id)
	}
	return nil
}

func (g *Graph) addLabel(id, label string) {
	g.labels[id][label] = struct{}{}
}

func (g *Graph) addIncidence(fromID, toID string) {
	from := g.gonumNode(fromID)
	to := g.gonumNode(toID)
	if !g.g.HasEdgeFromTo(from, to) {
		g.g.SetEdge(g.g.NewEdge(g.g.Node(from), g.g.Node(to)))
	}
}

// Kind reports the kind of the atom with the given id.
func (g *Graph) Kind(id string) NodeKind { return g.kind[id] }

// SourceTarget returns the incident (source, target) state ids for a
// transition or hierarchy atom. Returns ("", "") for a state atom.
func (g *Graph) SourceTarget(id string) (string, string) { return g.sourceOf[id], g.targetOf[id] }

// Labels returns the sorted label set of an atom.
func (g *Graph) Labels(id string) []string {
	set := g.labels[id]
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// HasLabel reports whether atom id carries label.
func (g *Graph) HasLabel(id, label string) bool {
	_, ok := g.labels[id][label]
	return ok
}

// StateIDs, TransitionIDs and HierarchyIDs return sorted copies of each
// node-kind's id list.
func (g *Graph) StateIDs() []string      { return sortedCopy(g.stateIDs) }
func (g *Graph) TransitionIDs() []string { return sortedCopy(g.transitionIDs) }
func (g *Graph) HierarchyIDs() []string  { return sortedCopy(g.hierarchyIDs) }

// EdgeIDs returns the sorted union of transition and hierarchy atom ids:
// every node whose identity is defined by a (source, target) state pair.
func (g *Graph) EdgeIDs() []string {
	out := make([]string, 0, len(g.transitionIDs)+len(g.hierarchyIDs))
	out = append(out, g.transitionIDs...)
	out = append(out, g.hierarchyIDs...)
	sort.Strings(out)
	return out
}

// EdgeGroups partitions edge atoms (transitions and hierarchy relations) by
// their incident (source_id, target_id) state pair.
func (g *Graph) EdgeGroups() map[[2]string][]string {
	groups := make(map[[2]string][]string)
	for _, id := range g.EdgeIDs() {
		key := [2]string{g.sourceOf[id], g.targetOf[id]}
		groups[key] = append(groups[key], id)
	}
	for k := range groups {
		sort.Strings(groups[k])
	}
	return groups
}

// MaxParallelEdges returns the largest count of edge atoms sharing the same
// (source, target) pair, the quantity the exhaustive-matcher size gate checks.
func (g *Graph) MaxParallelEdges() int {
	max := 0
	for _, ids := range g.EdgeGroups() {
		if len(ids) > max {
			max = len(ids)
		}
	}
	return max
}

// Predecessors returns the sorted edge atom ids whose target is stateID.
func (g *Graph) Predecessors(stateID string) []string {
	var out []string
	for _, id := range g.EdgeIDs() {
		if g.targetOf[id] == stateID {
			out = append(out, id)
		}
	}
	return out
}

// Successors returns the sorted edge atom ids whose source is stateID.
func (g *Graph) Successors(stateID string) []string {
	var out []string
	for _, id := range g.EdgeIDs() {
		if g.sourceOf[id] == stateID {
			out = append(out, id)
		}
	}
	return out
}

// Atoms returns every labelled atom in the graph: L(G) in the scoring
// notation, sorted for deterministic iteration.
func (g *Graph) Atoms() []Atom {
	var out []Atom
	for _, id := range g.allIDsSorted() {
		for _, l := range g.Labels(id) {
			out = append(out, Atom{NodeID: id, Label: l})
		}
	}
	return out
}

func (g *Graph) allIDsSorted() []string {
	all := make([]string, 0, len(g.kind))
	for id := range g.kind {
		all = append(all, id)
	}
	sort.Strings(all)
	return all
}

func sortedCopy(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}
