package schedule

import (
	"github.com/aeromesh/skyroute/reservation"
	"github.com/aeromesh/skyroute/teg"
)

// Reserve commits route against g and tracker: every edge the route
// traverses is reserved across its full duration interval, and every
// visited TimeNode's Occupancy is incremented, except the first ((START,
// 0), which is exempt per spec §3 and already seeded with NbDrones
// occupancy at Build time).
//
// Callers run this once per drone, strictly after that drone's
// pathfinder.FindRoute call and strictly before the next drone's — spec
// §4.5's sequential assembler has no concept of reserving two drones at
// once.
func Reserve(g *teg.Graph, tracker *reservation.Tracker, route Route) {
	for i, step := range route.Steps {
		if step.HasEdge {
			tracker.ReserveEdge(step.Edge)
		}
		if i == 0 {
			continue
		}
		g.Node(step.Node).Occupancy++
	}
}
