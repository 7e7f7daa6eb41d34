// SPDX-License-Identifier: MIT

// Package graph decouples "which positions are adjacent" from the search
// algorithms that consume adjacency.
//
// Three shapes of adjacency are supported:
//
//   - Graph[N]:    static adjacency, Neighbors(n) is fixed for the lifetime
//     of a search. Consumed by dijkstra and apsp.
//   - Temporal[N]: time-dependent adjacency, Successors(n, t) lists the
//     positions occupiable at time t from n occupied at t-1 (waiting in
//     place included when allowed). Consumed by wavefront.
//   - Periodic:    optional companion of Temporal; the obstacle field
//     repeats every Period() steps.
//
// Adapters:
//
//   - Func[N]:  wraps a plain neighbor function.
//   - Grid[T]:  a gridgraph.Grid plus a StepRule deciding which moves between
//     neighboring cell values are valid; Reverse() flips the rule so a search
//     can run from the goal back to candidate sources.
//   - Labeled:  string-keyed adjacency list with deterministic node order.
//
// None of the adapters hold search state; they are safe to share between
// sequential searches.
package graph
