// Package teg builds and exposes the time-expanded graph (TEG): the
// directed graph whose vertices are (hub, turn) pairs and whose edges
// encode both movement between hubs and waiting in place.
//
// A Graph is built once, from a frozen topology.Topology and a horizon
// (see the horizon package), and is then structurally immutable: no node
// or edge is ever added or removed after Build returns. The only mutable
// field on a TimeNode is Occupancy, updated exclusively by schedule.Reserve
// during routing (spec §5).
//
// Nodes and edges are addressed by integer handles (NodeHandle,
// EdgeHandle) rather than pointers, so that the graph can be stored in
// flat slices without per-node allocation and without the dangling-pointer
// risk of a pointer-linked graph (spec §9's re-architecture guidance).
//
// Errors:
//
//	ErrNoStart       - the topology has no START hub (should not occur
//	                   past topology.Validate).
//	ErrNegativeHorizon - Build was called with a negative horizon.
package teg
