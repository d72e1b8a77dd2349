// Package pathfinder runs one drone's lexicographic Dijkstra over a
// time-expanded graph, honoring whatever capacity an in-progress
// reservation.Tracker already reflects (spec §4.4).
//
// The algorithm is the teacher's classic heap-based Dijkstra, generalized
// from a scalar distance to the lexicographic pair (arrival turn, negated
// priority-hub count): minimize arrival turn first, and among routes that
// arrive equally early, maximize the number of PRIORITY hubs entered. Pop
// order ties are broken by a monotonic insertion counter so that runs over
// identical input are bit-for-bit reproducible regardless of map or heap
// iteration order (spec §9's "negated-priority key" and
// "insertion-counter" guidance).
//
// Errors:
//
//	ErrNoRoute - the pathfinder exhausted the frontier without reaching
//	             END; under the horizon formula this signals an input
//	             invariant violation (spec §7, InfeasibleSchedule).
package pathfinder
