// SPDX-License-Identifier: MIT

// Package gridgraph defines the core types and options of the grid layer.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Position identifies one grid cell. Row grows downwards, Col grows to the right.
// Positions outside the grid are legal values; only grid accessors reject them.
type Position struct {
	Row, Col int
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Unit steps in (row, col) space.
var (
	Up    = Position{Row: -1}
	Down  = Position{Row: 1}
	Left  = Position{Col: -1}
	Right = Position{Col: 1}
)

var (
	offsets4 = []Position{Up, Right, Down, Left}
	offsets8 = []Position{
		Up, {Row: -1, Col: 1}, Right, {Row: 1, Col: 1},
		Down, {Row: 1, Col: -1}, Left, {Row: -1, Col: -1},
	}
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity for Neighbors.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is a rectangular Height×Width container of cell values.
// Dimensions are fixed at construction; cells are stored row-major.
type Grid[T any] struct {
	Height, Width int
	Conn          Connectivity
	cells         []T
	offsets       []Position
}
