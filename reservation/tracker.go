package reservation

import "github.com/aeromesh/skyroute/teg"

type edgeTurn struct {
	edge teg.EdgeHandle
	turn int
}

// Tracker holds the per-(edge, turn) occupancy counters described in spec
// §3's ReservationTracker. It is created once per routing run and consulted
// read-only by every drone's pathfinder, then mutated through ReserveEdge
// (called by schedule.Reserve) once that drone's route is committed.
type Tracker struct {
	graph   *teg.Graph
	edgeUse map[edgeTurn]int
}

// New creates a Tracker with no reservations against g.
func New(g *teg.Graph) *Tracker {
	return &Tracker{graph: g, edgeUse: make(map[edgeTurn]int)}
}

// Occupied returns the number of drones currently committed to edge e
// during turn, turn.
func (t *Tracker) Occupied(e teg.EdgeHandle, turn int) int {
	return t.edgeUse[edgeTurn{edge: e, turn: turn}]
}

// EdgeTraversable reports whether e has spare capacity in every turn it
// consumes. For a duration-2 (RESTRICTED-target) move edge this checks
// both consumed turns independently, since a drone occupies the edge
// during both (spec §4.3): capacity must hold for the full interval, not
// just the turn the drone departs.
func (t *Tracker) EdgeTraversable(e teg.EdgeHandle) bool {
	edge := t.graph.Edge(e)
	for turn := edge.FromTurn; turn < edge.FromTurn+edge.Duration(); turn++ {
		if t.Occupied(e, turn) >= edge.MaxCapacity {
			return false
		}
	}
	return true
}

// CanEnter reports whether node has spare vertex capacity. Callers are
// responsible for exempting (START, 0), which is seeded with NbDrones
// occupancy and never capacity-checked (spec §3).
func (t *Tracker) CanEnter(node teg.NodeHandle) bool {
	n := t.graph.Node(node)
	return n.Occupancy < n.Hub.MaxDrones
}

// ReserveEdge increments occupancy for e across every turn in its duration
// interval. Callers must have already confirmed EdgeTraversable(e).
func (t *Tracker) ReserveEdge(e teg.EdgeHandle) {
	edge := t.graph.Edge(e)
	for turn := edge.FromTurn; turn < edge.FromTurn+edge.Duration(); turn++ {
		key := edgeTurn{edge: e, turn: turn}
		t.edgeUse[key]++
	}
}
