// Package reservation tracks per-(edge, turn) occupancy on a time-expanded
// graph so the pathfinder can veto transitions that would exceed a
// TimeEdge's capacity (spec §4.3).
//
// Vertex occupancy is not duplicated here: it lives directly on
// teg.TimeNode.Occupancy, and CanEnter reads it straight from the graph.
// Tracker owns only the edge_use counters; both are mutated exclusively by
// schedule.Reserve (through ReserveEdge for the edge counters), called once
// per drone after that drone's route has been chosen
// (spec §5's single mutation point per resource).
package reservation
