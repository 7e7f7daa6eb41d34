// SPDX-License-Identifier: MIT

package gridgraph

// Components finds all contiguous regions of cells for which passable
// returns true, according to g.Conn connectivity.
// Components are listed in the row-major order of their first cell; the
// cells of one component are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Components(passable func(T) bool) [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position

	for i0, v := range g.cells {
		if seen[i0] || !passable(v) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Position

		for qi := 0; qi < len(queue); qi++ {
			p := g.PositionOf(queue[qi])
			comp = append(comp, p)
			for _, d := range g.offsets {
				q := p.Add(d)
				if !g.InBounds(q) {
					continue
				}
				j := g.Index(q)
				if !seen[j] && passable(g.cells[j]) {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
