// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strings"
)

// New constructs a height×width grid with every cell set to fill.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New[T any](height, width int, fill T, opts GridOptions) (*Grid[T], error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]T, height*width)
	for i := range cells {
		cells[i] = fill
	}
	return newGrid(height, width, cells, opts.Conn), nil
}

// From2D constructs a grid from a non-empty, rectangular 2D slice,
// where values[row][col] becomes cell (row, col). The input is copied.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func From2D[T any](values [][]T, conn Connectivity) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]T, 0, h*w)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells = append(cells, row...)
	}
	return newGrid(h, w, cells, conn), nil
}

// FromLines builds a byte grid from text lines, one cell per byte.
func FromLines(lines []string, conn Connectivity) (*Grid[byte], error) {
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	return From2D(rows, conn)
}

func newGrid[T any](h, w int, cells []T, conn Connectivity) *Grid[T] {
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	return &Grid[T]{
		Height:  h,
		Width:   w,
		Conn:    conn,
		cells:   cells,
		offsets: offsets,
	}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the value stored at p, or ErrOutOfBounds.
func (g *Grid[T]) At(p Position) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, g.outOfBounds(p)
	}
	return g.cells[g.Index(p)], nil
}

// Set stores v at p, or returns ErrOutOfBounds.
func (g *Grid[T]) Set(p Position, v T) error {
	if !g.InBounds(p) {
		return g.outOfBounds(p)
	}
	g.cells[g.Index(p)] = v
	return nil
}

func (g *Grid[T]) outOfBounds(p Position) error {
	return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Height, g.Width)
}

// NeighborOffsets returns the precomputed neighbor offsets for g.Conn.
// The slice is shared; callers must not modify it.
func (g *Grid[T]) NeighborOffsets() []Position {
	return g.offsets
}

// Neighbors4 returns the in-bounds von Neumann neighbors of p
// in the order up, right, down, left, regardless of g.Conn.
func (g *Grid[T]) Neighbors4(p Position) ([]Position, error) {
	return g.neighbors(p, offsets4)
}

// Neighbors returns the in-bounds neighbors of p under g.Conn.
func (g *Grid[T]) Neighbors(p Position) ([]Position, error) {
	return g.neighbors(p, g.offsets)
}

func (g *Grid[T]) neighbors(p Position, offsets []Position) ([]Position, error) {
	if !g.InBounds(p) {
		return nil, g.outOfBounds(p)
	}
	out := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

// Find returns every position whose value satisfies match, in row-major order.
func (g *Grid[T]) Find(match func(T) bool) []Position {
	var out []Position
	for i, v := range g.cells {
		if match(v) {
			out = append(out, g.PositionOf(i))
		}
	}
	return out
}

// Index maps p to its row-major index: Row*Width + Col.
// The result is meaningless for out-of-bounds positions.
// Complexity: O(1).
func (g *Grid[T]) Index(p Position) int {
	return p.Row*g.Width + p.Col
}

// PositionOf converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid[T]) PositionOf(idx int) Position {
	return Position{Row: idx / g.Width, Col: idx % g.Width}
}

// Format renders the grid one line per row, mapping each value through cell.
func (g *Grid[T]) Format(cell func(T) byte) string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			b.WriteByte(cell(g.cells[r*g.Width+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
