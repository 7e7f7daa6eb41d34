// SPDX-License-Identifier: MIT

package graph

import "github.com/katalvlaran/gridpath/gridgraph"

// Grid exposes a gridgraph.Grid as a Graph of positions.
// A move p→q exists iff q is a neighbor of p under the grid's connectivity
// and rule(value(p), value(q)) holds.
type Grid[T any] struct {
	grid     *gridgraph.Grid[T]
	rule     StepRule[T]
	reversed bool
}

// NewGrid wraps g with the given step rule. A nil rule allows every move.
func NewGrid[T any](g *gridgraph.Grid[T], rule StepRule[T]) *Grid[T] {
	if rule == nil {
		rule = func(_, _ T) bool { return true }
	}
	return &Grid[T]{grid: g, rule: rule}
}

// Reverse returns the graph with every move turned around: q is a neighbor
// of p in the result iff p is a neighbor of q in the receiver.
func (gg *Grid[T]) Reverse() *Grid[T] {
	return &Grid[T]{grid: gg.grid, rule: gg.rule, reversed: !gg.reversed}
}

// Underlying returns the wrapped grid.
func (gg *Grid[T]) Underlying() *gridgraph.Grid[T] { return gg.grid }

// Neighbors returns the valid moves out of p. Out-of-bounds p has none.
func (gg *Grid[T]) Neighbors(p gridgraph.Position) []gridgraph.Position {
	from, err := gg.grid.At(p)
	if err != nil {
		return nil
	}
	candidates, _ := gg.grid.Neighbors(p)
	out := candidates[:0]
	for _, q := range candidates {
		to, _ := gg.grid.At(q)
		ok := gg.rule(from, to)
		if gg.reversed {
			ok = gg.rule(to, from)
		}
		if ok {
			out = append(out, q)
		}
	}
	return out
}
