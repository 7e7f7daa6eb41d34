// SPDX-License-Identifier: MIT

package valley

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/wavefront"
)

// Sentinel errors for parsing and routing.
var (
	// ErrMalformed indicates a map that is not a walled basin with exactly
	// one gap in the top and bottom walls.
	ErrMalformed = errors.New("valley: malformed map")
	// ErrNoLegs indicates Trip was asked for fewer than one leg.
	ErrNoLegs = errors.New("valley: trip needs at least one leg")
)

// Valley is a parsed basin. It is read-only after Parse and safe for
// concurrent use.
type Valley struct {
	// Height and Width are the interior dimensions.
	Height, Width int

	winds    *gridgraph.Grid[byte]
	entrance gridgraph.Position
	exit     gridgraph.Position
	period   int
	opts     []wavefront.Option
}

// Option configures a Valley.
type Option func(*Valley)

// WithSearchOptions forwards opts to every wavefront search.
// StartTime is always set by the crossing itself.
func WithSearchOptions(opts ...wavefront.Option) Option {
	return func(v *Valley) { v.opts = append(v.opts, opts...) }
}

// Parse reads a basin map. Trailing blank lines are ignored.
func Parse(r io.Reader, opts ...Option) (*Valley, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("valley: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return FromLines(lines, opts...)
}

// FromLines builds a Valley from already split rows.
func FromLines(lines []string, opts ...Option) (*Valley, error) {
	if len(lines) < 3 || len(lines[0]) < 3 {
		return nil, fmt.Errorf("%w: need at least 3x3 cells", ErrMalformed)
	}
	raw, err := gridgraph.FromLines(lines, gridgraph.Conn4)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	h, w := raw.Height-2, raw.Width-2

	top, err := gap(lines[0])
	if err != nil {
		return nil, fmt.Errorf("%w: top wall: %v", ErrMalformed, err)
	}
	bottom, err := gap(lines[len(lines)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: bottom wall: %v", ErrMalformed, err)
	}

	winds, _ := gridgraph.New[byte](h, w, '.', gridgraph.DefaultGridOptions())
	for r := 0; r < h; r++ {
		row := lines[r+1]
		if row[0] != '#' || row[len(row)-1] != '#' {
			return nil, fmt.Errorf("%w: row %d is not walled", ErrMalformed, r+1)
		}
		for c := 0; c < w; c++ {
			switch b := row[c+1]; b {
			case '.', '>', '<', '^', 'v':
				_ = winds.Set(gridgraph.Position{Row: r, Col: c}, b)
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrMalformed, b, r+1, c+1)
			}
		}
	}

	v := &Valley{
		Height:   h,
		Width:    w,
		winds:    winds,
		entrance: gridgraph.Position{Row: -1, Col: top - 1},
		exit:     gridgraph.Position{Row: h, Col: bottom - 1},
		period:   lcm(h, w),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// gap returns the column of the single '.' in an otherwise solid wall row.
// Corner cells cannot be gaps.
func gap(row string) (int, error) {
	col := -1
	for i := 0; i < len(row); i++ {
		switch row[i] {
		case '#':
		case '.':
			if i == 0 || i == len(row)-1 {
				return 0, errors.New("gap in corner")
			}
			if col >= 0 {
				return 0, errors.New("more than one gap")
			}
			col = i
		default:
			return 0, fmt.Errorf("unexpected %q", row[i])
		}
	}
	if col < 0 {
		return 0, errors.New("no gap")
	}
	return col, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

// mod is the non-negative remainder of a divided by n.
func mod(a, n int) int { return ((a % n) + n) % n }

// Entrance returns the holding cell above the top wall gap.
func (v *Valley) Entrance() gridgraph.Position { return v.entrance }

// Exit returns the holding cell below the bottom wall gap.
func (v *Valley) Exit() gridgraph.Position { return v.exit }

// Period returns lcm(Height, Width), the cycle length of the blizzard state.
func (v *Valley) Period() int { return v.period }

// interior reports whether p lies inside the walls.
func (v *Valley) interior(p gridgraph.Position) bool {
	return p.Row >= 0 && p.Row < v.Height && p.Col >= 0 && p.Col < v.Width
}

func (v *Valley) wind(r, c int) byte {
	b, _ := v.winds.At(gridgraph.Position{Row: r, Col: c})
	return b
}

// Blocked reports whether any blizzard covers p at time t.
// The entrance, the exit and every non-interior cell are never blocked.
func (v *Valley) Blocked(p gridgraph.Position, t int) bool {
	return v.count(p, t) > 0
}

// count returns how many blizzards cover interior cell p at time t.
func (v *Valley) count(p gridgraph.Position, t int) int {
	if !v.interior(p) {
		return 0
	}
	r, c := p.Row, p.Col
	n := 0
	if v.wind(mod(r+t, v.Height), c) == '^' {
		n++
	}
	if v.wind(mod(r-t, v.Height), c) == 'v' {
		n++
	}
	if v.wind(r, mod(c+t, v.Width)) == '<' {
		n++
	}
	if v.wind(r, mod(c-t, v.Width)) == '>' {
		n++
	}
	return n
}

// moves are the candidate offsets from a cell: wait, then the four steps.
var moves = []gridgraph.Position{{}, gridgraph.Up, gridgraph.Right, gridgraph.Down, gridgraph.Left}

// Successors returns the cells the expedition may occupy at time t after
// standing on p at t-1: p itself or a neighbor, limited to the interior and
// the two holding cells, and free of blizzards at t.
func (v *Valley) Successors(p gridgraph.Position, t int) []gridgraph.Position {
	out := make([]gridgraph.Position, 0, len(moves))
	for _, d := range moves {
		q := p.Add(d)
		switch {
		case q == v.entrance, q == v.exit:
			out = append(out, q)
		case v.interior(q) && !v.Blocked(q, t):
			out = append(out, q)
		}
	}
	return out
}

// Cross returns the earliest time at which to can be occupied when leaving
// from at time start.
func (v *Valley) Cross(from, to gridgraph.Position, start int) (int, error) {
	opts := append(append([]wavefront.Option(nil), v.opts...), wavefront.WithStartTime(start))
	res, err := wavefront.Search[gridgraph.Position](v, []gridgraph.Position{from},
		func(p gridgraph.Position) bool { return p == to }, opts...)
	if err != nil {
		return 0, fmt.Errorf("valley: crossing %v→%v from t=%d: %w", from, to, start, err)
	}
	return res.Time, nil
}

// Trip crosses the basin legs times, alternating entrance→exit and
// exit→entrance, each leg leaving when the previous one arrives.
// It returns the arrival time of the last leg.
func (v *Valley) Trip(legs int) (int, error) {
	if legs < 1 {
		return 0, fmt.Errorf("%w: %d", ErrNoLegs, legs)
	}
	from, to := v.entrance, v.exit
	t := 0
	for i := 0; i < legs; i++ {
		var err error
		if t, err = v.Cross(from, to, t); err != nil {
			return 0, err
		}
		from, to = to, from
	}
	return t, nil
}

// Snapshot draws the basin at time t with its walls. A cell covered by one
// blizzard shows its heading; several blizzards show their count.
func (v *Valley) Snapshot(t int) string {
	var b strings.Builder
	b.Grow((v.Width + 3) * (v.Height + 2))
	wall := func(gapCol int) {
		for c := -1; c <= v.Width; c++ {
			if c == gapCol {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	wall(v.entrance.Col)
	for r := 0; r < v.Height; r++ {
		b.WriteByte('#')
		for c := 0; c < v.Width; c++ {
			b.WriteByte(v.cellAt(r, c, t))
		}
		b.WriteString("#\n")
	}
	wall(v.exit.Col)
	return b.String()
}

func (v *Valley) cellAt(r, c, t int) byte {
	p := gridgraph.Position{Row: r, Col: c}
	switch n := v.count(p, t); n {
	case 0:
		return '.'
	case 1:
		for _, src := range []struct {
			r, c    int
			heading byte
		}{
			{mod(r+t, v.Height), c, '^'},
			{mod(r-t, v.Height), c, 'v'},
			{r, mod(c+t, v.Width), '<'},
			{r, mod(c-t, v.Width), '>'},
		} {
			if v.wind(src.r, src.c) == src.heading {
				return src.heading
			}
		}
		return '?'
	default:
		return byte('0' + n)
	}
}
