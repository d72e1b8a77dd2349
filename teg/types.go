package teg

import "github.com/aeromesh/skyroute/topology"

// NodeHandle addresses a TimeNode within a Graph's flat node slice.
type NodeHandle int

// EdgeHandle addresses a TimeEdge within a Graph's flat edge slice; it also
// serves as the identity used by the reservation tracker ("TimeEdge
// identity" in spec §3).
type EdgeHandle int

// TimeNode is one (hub, turn) vertex of the TEG.
type TimeNode struct {
	Hub *topology.Hub
	Turn int

	// Occupancy is the number of drones currently committed to be present
	// at this node at this turn, after all reservations made so far. It is
	// initialized to NbDrones for (START, 0) and to 0 everywhere else, and
	// mutated only by schedule.Reserve.
	Occupancy int
}

// IsPriority reports whether this node's hub is a PRIORITY zone.
func (n TimeNode) IsPriority() bool { return n.Hub.Zone == topology.ZonePriority }

// IsTerminal reports whether this node's hub is the END hub.
func (n TimeNode) IsTerminal() bool { return n.Hub.Category == topology.CategoryEnd }

// TimeEdge is a directed transition between two TimeNodes. Its Kind (move
// vs. wait) is derived from FromHub/ToHub rather than stored separately,
// per spec §3.
type TimeEdge struct {
	Source, Target     NodeHandle
	FromHub, ToHub     string
	FromTurn, ToTurn   int
	MaxCapacity        int
}

// Duration is the number of turns this edge spans (1 or 2).
func (e TimeEdge) Duration() int { return e.ToTurn - e.FromTurn }

// IsMove reports whether this edge moves between distinct hubs.
func (e TimeEdge) IsMove() bool { return e.FromHub != e.ToHub }

// IsWait reports whether this edge idles within the same hub.
func (e TimeEdge) IsWait() bool { return e.FromHub == e.ToHub }

// Stats is a read-only diagnostic snapshot of a built Graph.
type Stats struct {
	NodeCount int
	EdgeCount int
	MoveEdgeCount int
	WaitEdgeCount int
}
