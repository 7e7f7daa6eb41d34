// SPDX-License-Identifier: MIT

// Package valley routes an expedition through a walled basin swept by
// blizzards.
//
// The map is a rectangle of '#' walls with one gap in the top wall (the
// entrance) and one in the bottom wall (the exit). Interior cells are '.'
// or a blizzard heading '>', '<', '^' or 'v'. Every minute each blizzard
// moves one cell in its heading and wraps around to the opposite side of
// the interior; blizzards pass through each other.
//
// Blizzard occupancy is computed analytically: a cell (r, c) is covered at
// time t iff one of the four source cells (r+t, c), (r-t, c), (r, c+t),
// (r, c-t), taken modulo the interior size, holds a blizzard heading the
// right way. The whole state therefore repeats every lcm(height, width)
// minutes, which the wavefront search uses for cycle detection.
//
// Positions are interior coordinates: (0,0) is the top-left interior cell,
// the entrance sits at row -1 and the exit at row Height.
package valley
