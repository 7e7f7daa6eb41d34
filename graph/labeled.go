// SPDX-License-Identifier: MIT

package graph

import "sort"

// Labeled is a string-keyed adjacency list.
// Nodes are auto-added by AddEdge/AddArc; Neighbors keeps insertion order
// and Nodes is sorted, so searches over a Labeled graph are deterministic.
// Not safe for concurrent mutation.
type Labeled struct {
	adj map[string][]string
}

// NewLabeled returns an empty graph.
func NewLabeled() *Labeled {
	return &Labeled{adj: make(map[string][]string)}
}

// AddNode adds id if missing. Adding an existing node is a no-op.
func (g *Labeled) AddNode(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
}

// AddArc adds the one-way edge from→to. Duplicate arcs are ignored.
func (g *Labeled) AddArc(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	for _, v := range g.adj[from] {
		if v == to {
			return
		}
	}
	g.adj[from] = append(g.adj[from], to)
}

// AddEdge adds the undirected edge u—v as two arcs.
func (g *Labeled) AddEdge(u, v string) {
	g.AddArc(u, v)
	g.AddArc(v, u)
}

// HasNode reports whether id was added.
func (g *Labeled) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the arcs out of id in insertion order.
// The slice is shared; callers must not modify it.
func (g *Labeled) Neighbors(id string) []string {
	return g.adj[id]
}

// Nodes returns every node ID in lexicographic order.
func (g *Labeled) Nodes() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of nodes.
func (g *Labeled) Len() int { return len(g.adj) }
