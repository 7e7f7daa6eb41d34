// SPDX-License-Identifier: MIT

package hills

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/graph"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for map parsing and routing.
var (
	// ErrNoStart indicates the map has no 'S' cell.
	ErrNoStart = errors.New("hills: map has no start marker")
	// ErrNoEnd indicates the map has no 'E' cell.
	ErrNoEnd = errors.New("hills: map has no end marker")
	// ErrBadCell indicates a byte other than a-z, S or E.
	ErrBadCell = errors.New("hills: invalid map cell")
	// ErrDuplicateMarker indicates more than one 'S' or 'E'.
	ErrDuplicateMarker = errors.New("hills: marker appears more than once")
)

// Lowest and Highest are the elevation bounds.
const (
	Lowest  int = 0
	Highest int = 'z' - 'a'
)

// Map is a parsed elevation grid.
type Map struct {
	// Elevation holds levels 0..25 per cell.
	Elevation *gridgraph.Grid[int]
	// Start and End are the S and E positions.
	Start, End gridgraph.Position

	opts []dijkstra.Option
}

// Option configures the searches run by a Map.
type Option func(*Map)

// WithSearchOptions forwards opts to every dijkstra search.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(m *Map) { m.opts = append(m.opts, opts...) }
}

// Parse reads a map, one row per line. Trailing blank lines are ignored.
func Parse(r io.Reader, opts ...Option) (*Map, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("hills: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return FromLines(lines, opts...)
}

// FromLines builds a Map from already split rows.
func FromLines(lines []string, opts ...Option) (*Map, error) {
	raw, err := gridgraph.FromLines(lines, gridgraph.Conn4)
	if err != nil {
		return nil, fmt.Errorf("hills: %w", err)
	}
	elev, _ := gridgraph.New(raw.Height, raw.Width, 0, gridgraph.DefaultGridOptions())
	m := &Map{Elevation: elev}
	var haveStart, haveEnd bool
	for idx := 0; idx < raw.Height*raw.Width; idx++ {
		p := raw.PositionOf(idx)
		c, _ := raw.At(p)
		switch {
		case c == 'S':
			if haveStart {
				return nil, fmt.Errorf("%w: S at %v", ErrDuplicateMarker, p)
			}
			m.Start, haveStart = p, true
			c = 'a'
		case c == 'E':
			if haveEnd {
				return nil, fmt.Errorf("%w: E at %v", ErrDuplicateMarker, p)
			}
			m.End, haveEnd = p, true
			c = 'z'
		case c < 'a' || c > 'z':
			return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, c, p)
		}
		_ = elev.Set(p, int(c-'a'))
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveEnd {
		return nil, ErrNoEnd
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// climbable allows a rise of at most one level and any descent.
func climbable(from, to int) bool { return to-from <= 1 }

// Graph returns the forward step graph of m.
func (m *Map) Graph() *graph.Grid[int] {
	return graph.NewGrid(m.Elevation, climbable)
}

// Climb returns the fewest steps from Start to End and one shortest path.
// Returns dijkstra.ErrUnreachable if the summit cannot be reached.
func (m *Map) Climb() (int64, []gridgraph.Position, error) {
	path, steps, err := dijkstra.ShortestPath[gridgraph.Position](m.Graph(), m.Start, m.End, m.opts...)
	if err != nil {
		return 0, nil, fmt.Errorf("hills: climb: %w", err)
	}
	return steps, path, nil
}

// Descend returns the fewest steps from any lowest cell up to End, the
// lowland cell that achieves it, and the path from that cell to End.
//
// The search runs from End over the reversed graph, so the first finalized
// lowest cell is a closest one.
func (m *Map) Descend() (int64, gridgraph.Position, []gridgraph.Position, error) {
	lowland := func(p gridgraph.Position) bool {
		v, _ := m.Elevation.At(p)
		return v == Lowest
	}
	res, err := dijkstra.Search[gridgraph.Position](m.Graph().Reverse(), []gridgraph.Position{m.End}, lowland, m.opts...)
	if err != nil {
		return 0, gridgraph.Position{}, nil, fmt.Errorf("hills: descend: %w", err)
	}
	from, _ := res.Goal()
	back, err := res.PathTo(from)
	if err != nil {
		return 0, gridgraph.Position{}, nil, fmt.Errorf("hills: descend: %w", err)
	}
	// back runs End → from; the trail is walked uphill.
	for a, b := 0, len(back)-1; a < b; a, b = a+1, b-1 {
		back[a], back[b] = back[b], back[a]
	}
	steps, _ := res.Distance(from).Value()
	return steps, from, back, nil
}

// Lowlands returns the connected regions of lowest cells, each in BFS
// order from its first cell in row-major order. Every region is a set of
// candidate trail starts that Descend treats alike.
func (m *Map) Lowlands() [][]gridgraph.Position {
	return m.Elevation.Components(func(v int) bool { return v == Lowest })
}

// Distances returns the climb distance from Start to every reachable cell.
func (m *Map) Distances() (map[gridgraph.Position]int64, error) {
	res, err := dijkstra.Search[gridgraph.Position](m.Graph(), []gridgraph.Position{m.Start}, nil, m.opts...)
	if err != nil {
		return nil, fmt.Errorf("hills: %w", err)
	}
	return res.Table(), nil
}
