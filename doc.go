// SPDX-License-Identifier: MIT

// Package gridpath is a small toolkit for unit-step shortest paths on grids
// and labeled graphs, plus three puzzle front-ends built on it.
//
// Building blocks:
//
//	distance/  — Distance: a non-negative step count or Unreached, with
//	             checked addition and a total order
//	gridgraph/ — generic rectangular Grid[T], positions, 4/8 neighbors,
//	             connected components
//	graph/     — Graph / Temporal / Periodic interfaces, a grid adapter
//	             with step rules and reversal, a string-keyed Labeled graph
//	dijkstra/  — multi-source shortest paths with goal tests, predecessor
//	             arena and path reconstruction
//	wavefront/ — time-expanded frontier search for graphs whose moves
//	             depend on the clock, with periodic cycle detection
//	apsp/      — dense all-pairs tables over a chosen node set, via repeated
//	             searches or Floyd–Warshall
//
// Front-ends:
//
//	hills/  — climb an elevation map, or find the best lowland start
//	valley/ — cross a basin swept by wrapping blizzards, possibly several times
//	valves/ — plan valve openings for one or two agents under a time budget
//	config/ — YAML settings for the gridpath command
//
// Quick ASCII example:
//
//	S . #
//	. # .
//	. . E
//
// has a 4-step shortest path S↓↓→→E around the two walls.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
