// SPDX-License-Identifier: MIT

// Package apsp precomputes shortest distances between every ordered pair
// of a fixed set of "interesting" nodes.
//
// Purpose:
//   - Downstream combinatorial searches (tour ordering, valve scheduling)
//     repeatedly ask "how far is u from v" for a handful of nodes in a much
//     larger graph. Table answers in O(1) after one build.
//
// Build strategies:
//   - Build runs dijkstra.Search once per interesting source over the full
//     graph and reads off the distances to the other interesting nodes.
//     O(K·(V+E) log V) for K interesting nodes.
//   - FloydWarshall runs the dense k→i→j closure over an explicit node list.
//     O(n³); useful for small graphs and as an independent cross-check.
//
// Lifecycle:
//   - A Table is populated by its constructor and read-only afterwards;
//     there are no mutators. It may be shared between goroutines.
//
// Errors:
//   - ErrEmptySet, ErrDuplicateKey: invalid interesting set.
//   - ErrUnknownNode: a query names a node outside the set.
//   - ErrUnreachable: the pair has no path.
//   - ErrAsymmetric:  CheckSymmetric found d(u,v) ≠ d(v,u).
package apsp
