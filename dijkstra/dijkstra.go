// SPDX-License-Identifier: MIT

// Package dijkstra implements the label-correcting shortest-path search over
// an implicit, unit-cost graph.
//
// Notes on implementation choices:
//
//   - Nodes are discovered lazily: the arena only ever holds nodes that were
//     reached, so implicit graphs with unbounded key spaces are fine.
//   - Predecessors are arena indices, never pointers.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Ties on distance are broken by push order, so repeated searches over the
//     same graph finalize nodes in the same order.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/distance"
	"github.com/katalvlaran/gridpath/graph"
)

// Search computes shortest distances from the given sources over g.
//
// Every source starts at distance 0; every other node is Unreached until
// relaxed. Each step finalizes the unfinalized node with the minimum
// tentative distance and relaxes its unfinalized neighbors with
// candidate = dist+1, recording the predecessor on strict improvement.
//
// If goal is nil the search runs until every reachable node within
// MaxDistance is finalized. Otherwise it stops as soon as a node satisfying
// goal is finalized, and fails with ErrUnreachable if none ever is.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the reached subgraph.
//   - Space: O(V + E).
func Search[N comparable](g graph.Graph[N], sources []N, goal func(N) bool, opts ...Option) (*Result[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSource
	}

	r := &runner[N]{
		g:    g,
		cfg:  cfg,
		goal: goal,
		res:  &Result[N]{index: make(map[N]int), goal: -1},
		pq:   make(nodePQ, 0, len(sources)),
	}
	r.init(sources)
	if err := r.process(); err != nil {
		return nil, err
	}

	log := cfg.Logger.WithFields(logrus.Fields{
		"sources":  len(sources),
		"explored": r.res.explored,
		"reached":  len(r.res.nodes),
	})
	if goal == nil {
		log.Debug("dijkstra: search exhausted")
		return r.res, nil
	}
	if r.res.goal < 0 {
		log.Debug("dijkstra: goal unreachable")
		return nil, ErrUnreachable
	}
	log.WithField("distance", r.res.nodes[r.res.goal].dist).Debug("dijkstra: goal finalized")
	return r.res, nil
}

// ShortestPath returns one shortest path from→to (both ends included) and its
// length. Path identity on ties is unspecified; the length is not.
func ShortestPath[N comparable](g graph.Graph[N], from, to N, opts ...Option) ([]N, int64, error) {
	res, err := Search(g, []N{from}, func(n N) bool { return n == to }, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(to)
	if err != nil {
		return nil, 0, err
	}
	d, _ := res.Distance(to).Value()
	return path, d, nil
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	g    graph.Graph[N]
	cfg  Options
	goal func(N) bool
	res  *Result[N]
	pq   nodePQ
	seq  int
}

// init seeds the arena and the heap with every distinct source at distance 0.
func (r *runner[N]) init(sources []N) {
	heap.Init(&r.pq)
	for _, s := range sources {
		if _, ok := r.res.index[s]; ok {
			continue
		}
		i := r.res.add(s)
		r.res.nodes[i].dist = distance.Finite(0)
		r.push(i, 0)
	}
}

// process repeatedly finalizes the closest unfinalized node and relaxes its
// neighbors, until the heap is empty, MaxDistance is exceeded, or the goal
// is finalized.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		n := &r.res.nodes[item.idx]

		// Skip stale heap entry.
		if n.visited {
			continue
		}
		if item.dist > r.cfg.MaxDistance {
			break
		}
		n.visited = true
		r.res.explored++

		if r.goal != nil && r.goal(n.key) {
			r.res.goal = item.idx
			return nil
		}
		if err := r.relax(item.idx); err != nil {
			return err
		}
	}
	return nil
}

// relax offers dist(u)+1 to every unfinalized neighbor of u.
func (r *runner[N]) relax(u int) error {
	cur := r.res.nodes[u]
	candidate, err := cur.dist.Add(1)
	if err != nil {
		return fmt.Errorf("dijkstra: relaxing from %v: %w", cur.key, err)
	}
	cd, _ := candidate.Value()

	for _, nb := range r.g.Neighbors(cur.key) {
		v, ok := r.res.index[nb]
		if !ok {
			v = r.res.add(nb)
		}
		node := &r.res.nodes[v]
		if node.visited || !candidate.Less(node.dist) {
			continue
		}
		node.dist = candidate
		node.prev = u
		r.push(v, cd)
	}
	return nil
}

func (r *runner[N]) push(idx int, d int64) {
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: d, seq: r.seq})
	r.seq++
}

// nodeItem is a heap entry: an arena index and the tentative distance at push time.
type nodeItem struct {
	idx  int
	dist int64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
