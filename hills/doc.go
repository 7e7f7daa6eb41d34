// SPDX-License-Identifier: MIT

// Package hills solves elevation-map routing on a letter grid.
//
// Cells hold elevations 'a'..'z'; 'S' marks the start (elevation 'a') and
// 'E' the summit (elevation 'z'). A step moves to an orthogonal neighbor and
// may rise at most one level, while descending any amount.
//
// Two questions are answered with the dijkstra package:
//
//   - Climb: fewest steps from S to E.
//   - Descend: fewest steps from E down to any lowest cell, searched on the
//     reversed step relation so a single search covers every candidate
//     start.
//
// Example:
//
//	m, err := hills.Parse(strings.NewReader(input))
//	steps, path, err := m.Climb()
//	fmt.Println(steps)
//	fmt.Print(m.Render(path))
package hills
