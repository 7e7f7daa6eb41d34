// SPDX-License-Identifier: MIT

// Package wavefront implements the synchronous wavefront search: a
// breadth-first flood over a time-varying obstacle field where every step
// costs exactly one tick.
//
// What:
//
//   - The frontier at time t is the *set* of every node occupiable at
//     exactly t. Time advances for the whole set at once.
//   - Successors come from a graph.Temporal, which decides validity at the
//     arrival time (moving obstacles) and whether waiting is allowed.
//   - The search stops at the first t whose frontier contains a goal node.
//
// Termination:
//
//   - An empty frontier means the goal is unreachable.
//   - For periodic fields (graph.Periodic, or WithPeriod) the frontier is
//     snapshotted once per period; seeing the same snapshot twice proves the
//     frontier sequence has entered a cycle without touching the goal.
//   - WithMaxTime bounds the search for aperiodic fields.
//
// Errors:
//
//   - ErrNilGraph, ErrNoSource, ErrNilGoal: invalid input.
//   - ErrUnreachable: frontier emptied, or a periodic cycle was detected.
//   - ErrTimeLimit:   MaxTime reached before the goal.
//   - ErrBadOption:   invalid option value.
package wavefront
