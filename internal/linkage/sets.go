package linkage

import (
	"slices"
)

// Graph is the directed bijection adjacency: A -> B when (A, B) classified
// as bijective. Sources and neighbors keep creation order.
type Graph struct {
	sources []string
	edges   map[string][]string
}

// BuildGraph collects the bijective verdicts into an adjacency graph.
func BuildGraph(verdicts []Verdict) *Graph {
	g := &Graph{edges: make(map[string][]string)}
	for _, v := range verdicts {
		if !v.Bijective {
			continue
		}
		g.AddEdge(v.Pair.First, v.Pair.Second)
	}
	return g
}

// AddEdge appends to as a neighbor of from.
func (g *Graph) AddEdge(from, to string) {
	if _, ok := g.edges[from]; !ok {
		g.sources = append(g.sources, from)
	}
	g.edges[from] = append(g.edges[from], to)
}

// Sources returns every column with at least one outgoing edge, in the
// order its first edge was added.
func (g *Graph) Sources() []string {
	return g.sources
}

// Neighbors returns the direct neighbors of source.
func (g *Graph) Neighbors(source string) []string {
	return g.edges[source]
}

// HasEdge reports whether from -> to exists.
func (g *Graph) HasEdge(from, to string) bool {
	return slices.Contains(g.edges[from], to)
}

// Partition is the split of the header into linked sets and free variables.
type Partition struct {
	LinkedSets    [][]string // each sorted, in emission order
	FreeVariables []string   // sorted
	Seen          int        // distinct columns placed in any linked set
}

// PartitionColumns emits one linked set per unseen source: the source plus
// its direct neighbors. Header columns never reached are free variables.
func PartitionColumns(header []string, g *Graph) Partition {
	seen := make(map[string]bool, len(header))
	var p Partition

	for _, source := range g.Sources() {
		if seen[source] {
			continue
		}
		neighbors := g.Neighbors(source)
		seen[source] = true
		for _, n := range neighbors {
			seen[n] = true
		}

		set := make([]string, 0, len(neighbors)+1)
		set = append(set, source)
		set = append(set, neighbors...)
		slices.Sort(set)
		p.LinkedSets = append(p.LinkedSets, set)
	}

	p.FreeVariables = []string{}
	for _, name := range header {
		if !seen[name] {
			p.FreeVariables = append(p.FreeVariables, name)
		}
	}
	slices.Sort(p.FreeVariables)
	p.Seen = len(seen)
	return p
}
