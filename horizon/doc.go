// Package horizon computes two things from a topology.Topology alone,
// before any time-expanded graph exists (spec §4.1):
//
//   - HasPath reports whether END is reachable from START at all, ignoring
//     capacities and restricted-zone costs. A false result means the
//     engine should fail fast with UnreachableTopology rather than build a
//     TEG that can never route anyone.
//   - MinPathCost computes the minimum possible traversal cost from START
//     to END, where entering a RESTRICTED hub costs 2 and entering any
//     other non-blocked hub costs 1. Horizon then derives the TEG horizon
//     H = MinPathCost + (nb_drones - 1): even a single-drone-wide
//     bottleneck forces drones through one at a time, and that extra
//     slack is necessary and sufficient for the sequential pathfinder to
//     succeed on every drone without retrying (spec §4.1, §9).
//
// HasPath is a plain unweighted breadth-first traversal. MinPathCost is a
// heap-based Dijkstra over the same non-blocked adjacency, carrying a
// per-step cost instead of a uniform depth.
package horizon
