// SPDX-License-Identifier: MIT

// Package valves plans the most pressure that can be released from a
// network of valves joined by tunnels.
//
// Moving through one tunnel takes a minute and opening a valve takes a
// minute; an open valve then releases its flow rate every remaining minute.
// Only valves with a non-zero rate are worth visiting, so the network is
// condensed to an apsp.Table over those valves plus the start, and the
// planner searches over opening orders:
//
//   - MaxRelease: one agent. Depth-first branch-and-bound over the dense
//     distance buffer; the incumbent lives in the planner owned by the call
//     and every node checks an optimistic bound (each unopened valve opened
//     as soon as it could possibly be reached) before branching.
//   - MaxReleasePair: two agents working in parallel. The best release is
//     recorded for every set of opened valves, and the answer is the best
//     sum over two disjoint sets.
//
// Complexity: worst case exponential in the number of non-zero valves;
// the bound keeps single-agent plans fast in practice. The pair search
// cannot prune and enumerates every feasible opening order.
package valves
