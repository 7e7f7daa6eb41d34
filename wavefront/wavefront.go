// SPDX-License-Identifier: MIT

package wavefront

import (
	"fmt"
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/graph"
)

// Search floods g from sources until a node satisfying goal is occupied.
//
// At StartTime the frontier is the source set. Each tick t → t+1 replaces
// it with the union of g.Successors(p, t+1) over every p in the frontier.
// If several goal nodes appear at the same tick, the first one produced is
// reported.
//
// Returns ErrNilGoal for a nil goal test, ErrUnreachable when the frontier
// empties or a periodic cycle is detected, ErrTimeLimit when MaxTime
// elapses, and ErrBadOption for invalid options.
func Search[N comparable](g graph.Temporal[N], sources []N, goal func(N) bool, opts ...Option) (*Result[N], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSource
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	period := o.Period
	if period == 0 {
		if p, ok := g.(graph.Periodic); ok {
			period = p.Period()
		}
	}

	w := &walker[N]{
		g:        g,
		goal:     goal,
		frontier: make(map[N]struct{}, len(sources)),
		res:      &Result[N]{Time: o.StartTime},
	}
	for _, s := range sources {
		if _, ok := w.frontier[s]; !ok {
			w.frontier[s] = struct{}{}
			w.order = append(w.order, s)
		}
	}
	w.res.Peak = len(w.frontier)

	var snapshots []map[N]struct{}
	log := o.Logger.WithField("start", o.StartTime)
	for t := o.StartTime; ; t++ {
		if n, ok := w.hit(); ok {
			w.res.Time = t
			w.res.Elapsed = t - o.StartTime
			w.res.Reached = n
			log.WithFields(logrus.Fields{
				"time": t,
				"peak": w.res.Peak,
			}).Debug("wavefront: goal reached")
			return w.res, nil
		}
		if len(w.frontier) == 0 {
			log.WithField("time", t).Debug("wavefront: frontier empty")
			return nil, fmt.Errorf("%w: frontier empty at t=%d", ErrUnreachable, t)
		}
		if period > 0 && (t-o.StartTime)%period == 0 {
			for _, s := range snapshots {
				if maps.Equal(s, w.frontier) {
					log.WithField("time", t).Debug("wavefront: periodic cycle")
					return nil, fmt.Errorf("%w: frontier repeats with period %d", ErrUnreachable, period)
				}
			}
			snapshots = append(snapshots, w.frontier)
		}
		if o.MaxTime > 0 && t-o.StartTime >= o.MaxTime {
			return nil, fmt.Errorf("%w: %d ticks", ErrTimeLimit, o.MaxTime)
		}
		w.advance(t + 1)
		o.OnStep(t+1, len(w.frontier))
	}
}

// walker encapsulates mutable wavefront state.
// order mirrors the frontier's keys in production order so goal selection
// does not depend on map iteration.
type walker[N comparable] struct {
	g        graph.Temporal[N]
	goal     func(N) bool
	frontier map[N]struct{}
	order    []N
	res      *Result[N]
}

// hit returns the first frontier node satisfying the goal test.
func (w *walker[N]) hit() (N, bool) {
	for _, n := range w.order {
		if w.goal(n) {
			return n, true
		}
	}
	var zero N
	return zero, false
}

// advance replaces the frontier with every node occupiable at time t.
// The previous frontier map is left untouched so it can serve as a snapshot.
func (w *walker[N]) advance(t int) {
	next := make(map[N]struct{}, len(w.frontier))
	order := make([]N, 0, len(w.order))
	for _, p := range w.order {
		for _, q := range w.g.Successors(p, t) {
			if _, ok := next[q]; ok {
				continue
			}
			next[q] = struct{}{}
			order = append(order, q)
		}
	}
	w.frontier, w.order = next, order
	if len(next) > w.res.Peak {
		w.res.Peak = len(next)
	}
}
