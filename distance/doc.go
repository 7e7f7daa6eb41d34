// SPDX-License-Identifier: MIT

// Package distance provides the path-length primitive shared by every
// solver in gridpath.
//
// What:
//
//   - Distance is a tagged value: either Unreached (conceptually +∞) or a
//     Finite non-negative step count.
//   - The zero value is Unreached, so freshly allocated arenas need no
//     initialization pass.
//
// Ordering:
//
//   - Unreached compares greater than every Finite value.
//   - Finite values compare numerically.
//   - Equality is structural: two Distances are equal iff == holds.
//
// Arithmetic:
//
//   - Unreached.Add(d) == Unreached for any d ≥ 0.
//   - Finite(a).Add(d) == Finite(a+d), or ErrOverflow if a+d does not fit
//     in int64. The sum never wraps.
//
// Errors:
//
//   - ErrOverflow:      the sum would exceed math.MaxInt64.
//   - ErrNegativeDelta: Add was called with a negative delta.
package distance
