// SPDX-License-Identifier: MIT

// Package gridgraph stores a fixed-size 2D grid of cell values and exposes
// the grid-as-graph primitives the solvers build on.
//
// What:
//
//   - Grid[T] wraps a rectangular, row-major buffer of Height×Width cells.
//   - Position{Row, Col} addresses a cell; it is a comparable value type.
//   - At/Set are bounds-checked and fail with ErrOutOfBounds; they never clamp.
//   - Neighbors4 returns von Neumann neighbors clipped to the grid;
//     Neighbors honors the configured Conn4/Conn8 offsets.
//   - Components finds contiguous regions of passable cells.
//
// Complexity:
//
//   - At, Set, InBounds, Index: O(1).
//   - Neighbors4, Neighbors:    O(d), d = 4 or 8.
//   - Components:               O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    a position outside [0,Height)×[0,Width) was queried.
package gridgraph
