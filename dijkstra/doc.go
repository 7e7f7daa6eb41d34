// SPDX-License-Identifier: MIT

// Package dijkstra provides the label-correcting shortest-path search used
// throughout gridpath.
//
// Overview:
//
//   - Search works over any graph.Graph[N]: explicit adjacency lists,
//     grid adapters with custom step rules, or closures.
//   - Every edge costs 1. Distances are distance.Distance values, so
//     "unreached" is a real state rather than a magic integer.
//   - It relies on a min-heap (priority queue) to always finalize the
//     next-closest node, instead of a linear scan over unfinalized nodes.
//   - Multiple sources are allowed; each starts at distance 0.
//
// When to use:
//
//   - Single goal: pass a goal test; the search stops when a node
//     satisfying it is finalized (first match wins).
//   - Full table: pass a nil goal and read Result.Table or Result.Distance.
//   - Path: Result.PathTo walks predecessor indices back to a source.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over the reached subgraph.
//   - Space: O(V + E) for the arena plus lazily duplicated heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil graph.
//   - ErrNoSource:       empty source list.
//   - ErrUnreachable:    goal given, frontier exhausted without finalizing it.
//   - ErrNotReached:     PathTo on a node that was not finalized.
//   - distance.ErrOverflow propagates if a distance would leave int64 range.
//
// Search state (arena, heap, visited flags) lives in a per-call runner and
// the returned Result; nothing is shared between calls.
package dijkstra
