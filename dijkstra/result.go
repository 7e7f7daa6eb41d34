// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridpath/distance"
)

// node is one arena entry. prev is the arena index of the predecessor on
// the best known path, or -1.
type node[N comparable] struct {
	key     N
	dist    distance.Distance
	visited bool
	prev    int
}

// Result is the outcome of one Search. It is owned by the caller and shares
// no state with later searches.
type Result[N comparable] struct {
	index    map[N]int
	nodes    []node[N]
	goal     int
	explored int
}

func (r *Result[N]) add(key N) int {
	r.nodes = append(r.nodes, node[N]{key: key, prev: -1})
	r.index[key] = len(r.nodes) - 1
	return len(r.nodes) - 1
}

// Distance returns the shortest distance to n if n was finalized, and
// Unreached otherwise (never seen, or cut off by an early stop or MaxDistance).
func (r *Result[N]) Distance(n N) distance.Distance {
	if i, ok := r.index[n]; ok && r.nodes[i].visited {
		return r.nodes[i].dist
	}
	return distance.Unreached()
}

// Reached reports whether n was finalized.
func (r *Result[N]) Reached(n N) bool {
	i, ok := r.index[n]
	return ok && r.nodes[i].visited
}

// Goal returns the finalized node that satisfied the goal test.
func (r *Result[N]) Goal() (N, bool) {
	if r.goal < 0 {
		var zero N
		return zero, false
	}
	return r.nodes[r.goal].key, true
}

// PathTo reconstructs the path from a source to dest by walking predecessor
// indices backwards and reversing. Returns ErrNotReached if dest was not finalized.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	i, ok := r.index[dest]
	if !ok || !r.nodes[i].visited {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	var path []N
	for ; i >= 0; i = r.nodes[i].prev {
		path = append(path, r.nodes[i].key)
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}
	return path, nil
}

// Table returns the finalized distance of every finalized node.
func (r *Result[N]) Table() map[N]int64 {
	out := make(map[N]int64, r.explored)
	for _, n := range r.nodes {
		if n.visited {
			d, _ := n.dist.Value()
			out[n.key] = d
		}
	}
	return out
}

// Explored returns the number of finalized nodes.
func (r *Result[N]) Explored() int { return r.explored }
