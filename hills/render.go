// SPDX-License-Identifier: MIT

package hills

import "github.com/katalvlaran/gridpath/gridgraph"

// Render draws path over a blank copy of the map: each cell on the path
// shows the direction of the next step, the final cell shows 'E', and every
// other cell is '.'. Rows end with '\n'.
func (m *Map) Render(path []gridgraph.Position) string {
	canvas, _ := gridgraph.New[byte](m.Elevation.Height, m.Elevation.Width, '.', gridgraph.DefaultGridOptions())
	for i, p := range path {
		mark := byte('E')
		if i+1 < len(path) {
			mark = arrow(p, path[i+1])
		}
		_ = canvas.Set(p, mark)
	}
	return canvas.Format(func(b byte) byte { return b })
}

func arrow(from, to gridgraph.Position) byte {
	switch (gridgraph.Position{Row: to.Row - from.Row, Col: to.Col - from.Col}) {
	case gridgraph.Up:
		return '^'
	case gridgraph.Down:
		return 'v'
	case gridgraph.Left:
		return '<'
	case gridgraph.Right:
		return '>'
	}
	return '?'
}
