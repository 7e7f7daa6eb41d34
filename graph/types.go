// SPDX-License-Identifier: MIT

package graph

// Graph is static adjacency over nodes of type N.
// Neighbors must return the same nodes for the same n for the lifetime of a search.
type Graph[N comparable] interface {
	Neighbors(n N) []N
}

// Temporal is time-dependent adjacency.
// Successors returns every node that may be occupied at time t by an agent
// occupying n at time t-1. Waiting in place is represented by n itself.
type Temporal[N comparable] interface {
	Successors(n N, t int) []N
}

// Periodic is implemented by temporal graphs whose adjacency repeats:
// Successors(n, t) == Successors(n, t+Period()) for every n and t.
type Periodic interface {
	Period() int
}

// Func adapts a plain neighbor function to Graph.
type Func[N comparable] func(n N) []N

// Neighbors calls f(n).
func (f Func[N]) Neighbors(n N) []N { return f(n) }

// TemporalFunc adapts a plain successor function to Temporal.
type TemporalFunc[N comparable] func(n N, t int) []N

// Successors calls f(n, t).
func (f TemporalFunc[N]) Successors(n N, t int) []N { return f(n, t) }

// StepRule decides whether a single step from a cell holding from into a
// neighboring cell holding to is valid.
type StepRule[T any] func(from, to T) bool
