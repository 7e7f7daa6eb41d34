// SPDX-License-Identifier: MIT

package valves

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

// Plan is the outcome of a single-agent search.
type Plan struct {
	// Released is the total pressure released by the deadline.
	Released int
	// Order lists the valves in the order they are opened.
	Order []string
}

// planner holds the condensed network and the search state of one call.
// Index 0 is the start; dist is dense: dist[u*n+v], -1 when unreachable.
type planner struct {
	n     int
	names []string
	rate  []int
	dist  []int
	order [][]int // for each u: openable v sorted by dist[u→v], index tiebreak

	// Search state.
	path []int

	// Incumbent.
	best     int
	bestPath []int

	// bestByMask records the best release per opened set when non-nil.
	bestByMask map[uint64]int

	nodes  int
	pruned int
}

func (n *Network) newPlanner(start string) (*planner, error) {
	tbl, err := n.Distances(start)
	if err != nil {
		return nil, err
	}
	keys := tbl.Keys()
	if len(keys)-1 > maxOpenable {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(keys)-1, maxOpenable)
	}
	p := &planner{
		n:     len(keys),
		names: keys,
		rate:  make([]int, len(keys)),
		dist:  make([]int, len(keys)*len(keys)),
		order: make([][]int, len(keys)),
	}
	for i, k := range keys {
		p.rate[i] = n.valves[k].Rate
		for j := range keys {
			p.dist[i*p.n+j] = -1
			if d, ok := tbl.At(i, j).Value(); ok {
				p.dist[i*p.n+j] = int(d)
			}
		}
	}
	for u := 0; u < p.n; u++ {
		var vs []int
		for v := 0; v < p.n; v++ {
			if v != u && p.rate[v] > 0 && p.dist[u*p.n+v] >= 0 {
				vs = append(vs, v)
			}
		}
		sort.SliceStable(vs, func(a, b int) bool {
			return p.dist[u*p.n+vs[a]] < p.dist[u*p.n+vs[b]]
		})
		p.order[u] = vs
	}
	return p, nil
}

func bit(v int) uint64 { return 1 << uint(v) }

// bound returns an optimistic total: every unopened valve opened right
// after a direct walk from u.
func (p *planner) bound(u, left int, opened uint64, released int) int {
	ub := released
	if opened&bit(u) == 0 && p.rate[u] > 0 && left > 1 {
		ub += p.rate[u] * (left - 1)
	}
	for _, v := range p.order[u] {
		if opened&bit(v) != 0 {
			continue
		}
		if rem := left - p.dist[u*p.n+v] - 1; rem > 0 {
			ub += p.rate[v] * rem
		}
	}
	return ub
}

// dfs explores opening orders from u with left minutes remaining.
func (p *planner) dfs(u, left int, opened uint64, released int) {
	p.nodes++
	if released > p.best {
		p.best = released
		p.bestPath = append(p.bestPath[:0], p.path...)
	}
	if p.bestByMask != nil {
		if released > p.bestByMask[opened] {
			p.bestByMask[opened] = released
		}
	} else if p.bound(u, left, opened, released) <= p.best {
		p.pruned++
		return
	}
	for _, v := range p.order[u] {
		if opened&bit(v) != 0 {
			continue
		}
		rem := left - p.dist[u*p.n+v] - 1
		if rem <= 0 {
			continue
		}
		p.path = append(p.path, v)
		p.dfs(v, rem, opened|bit(v), released+p.rate[v]*rem)
		p.path = p.path[:len(p.path)-1]
	}
}

// run searches from the start. Arrival opens a valve at once, so a start
// valve with a non-zero rate gets its own root branch.
func (p *planner) run(minutes int) {
	p.dfs(0, minutes, 0, 0)
	if p.rate[0] > 0 && minutes > 1 {
		p.path = append(p.path[:0], 0)
		p.dfs(0, minutes-1, bit(0), p.rate[0]*(minutes-1))
		p.path = p.path[:0]
	}
}

// MaxRelease returns the best single-agent plan from start within minutes.
func (n *Network) MaxRelease(start string, minutes int) (Plan, error) {
	if minutes < 0 {
		return Plan{}, fmt.Errorf("%w: %d", ErrBadMinutes, minutes)
	}
	p, err := n.newPlanner(start)
	if err != nil {
		return Plan{}, err
	}
	p.run(minutes)

	plan := Plan{Released: p.best, Order: make([]string, len(p.bestPath))}
	for i, v := range p.bestPath {
		plan.Order[i] = p.names[v]
	}
	n.log.WithFields(logrus.Fields{
		"start":    start,
		"minutes":  minutes,
		"nodes":    p.nodes,
		"pruned":   p.pruned,
		"released": p.best,
	}).Debug("valves: single plan found")
	return plan, nil
}

// MaxReleasePair returns the best total of two agents leaving start
// together, each with minutes to spend, never opening the same valve.
func (n *Network) MaxReleasePair(start string, minutes int) (int, error) {
	if minutes < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadMinutes, minutes)
	}
	p, err := n.newPlanner(start)
	if err != nil {
		return 0, err
	}
	p.bestByMask = make(map[uint64]int)
	p.run(minutes)

	type entry struct {
		mask  uint64
		value int
	}
	entries := make([]entry, 0, len(p.bestByMask))
	for m, v := range p.bestByMask {
		entries = append(entries, entry{m, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].mask < entries[j].mask
	})

	best := 0
	for i := range entries {
		if 2*entries[i].value <= best {
			break
		}
		for j := i; j < len(entries); j++ {
			sum := entries[i].value + entries[j].value
			if sum <= best {
				break
			}
			if entries[i].mask&entries[j].mask == 0 {
				best = sum
			}
		}
	}
	n.log.WithFields(logrus.Fields{
		"start":    start,
		"minutes":  minutes,
		"nodes":    p.nodes,
		"sets":     len(entries),
		"released": best,
	}).Debug("valves: pair plan found")
	return best, nil
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()
