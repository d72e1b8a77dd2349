package teg

import "github.com/aeromesh/skyroute/topology"

type nodeKey struct {
	hub  string
	turn int
}

// Graph is the time-expanded graph built from a topology.Topology and a
// horizon. See doc.go for its lifecycle and mutation discipline.
type Graph struct {
	Horizon int

	nodes     []TimeNode
	edges     []TimeEdge
	index     map[nodeKey]NodeHandle
	adjacency [][]EdgeHandle
}

// Build materializes the TEG for top over turns [0, horizon], following
// spec §4.2:
//  1. BLOCKED hubs are filtered out entirely.
//  2. A TimeNode is created for every non-blocked hub and every turn in
//     [0, horizon]; (START, 0) is seeded with NbDrones occupancy.
//  3. Two directed move edges are emitted per connection per turn (one per
//     direction), skipped if the arrival turn would exceed horizon.
//  4. A directed wait edge is emitted for every non-blocked hub at every
//     turn < horizon.
func Build(top *topology.Topology, horizon int) (*Graph, error) {
	if horizon < 0 {
		return nil, ErrNegativeHorizon
	}
	start, ok := top.Start()
	if !ok {
		return nil, ErrNoStart
	}

	nonBlocked := top.NonBlockedHubs()
	g := &Graph{
		Horizon: horizon,
		index:   make(map[nodeKey]NodeHandle, len(nonBlocked)*(horizon+1)),
	}
	g.nodes = make([]TimeNode, 0, len(nonBlocked)*(horizon+1))

	for _, h := range nonBlocked {
		for t := 0; t <= horizon; t++ {
			occupancy := 0
			if h.Name == start.Name && t == 0 {
				occupancy = top.NbDrones
			}
			handle := NodeHandle(len(g.nodes))
			g.nodes = append(g.nodes, TimeNode{Hub: h, Turn: t, Occupancy: occupancy})
			g.index[nodeKey{h.Name, t}] = handle
		}
	}
	g.adjacency = make([][]EdgeHandle, len(g.nodes))

	for t := 0; t < horizon; t++ {
		for _, conn := range top.Connections() {
			ha, _ := top.Hub(conn.A)
			hb, _ := top.Hub(conn.B)
			if ha.Blocked() || hb.Blocked() {
				continue
			}
			g.tryAddMoveEdge(conn.A, t, conn.B, hb.Zone.EntryDuration(), conn.MaxLinkCapacity)
			g.tryAddMoveEdge(conn.B, t, conn.A, ha.Zone.EntryDuration(), conn.MaxLinkCapacity)
		}
	}

	for _, h := range nonBlocked {
		for t := 0; t < horizon; t++ {
			g.addEdge(h.Name, t, h.Name, t+1, h.MaxDrones)
		}
	}

	return g, nil
}

func (g *Graph) tryAddMoveEdge(from string, t int, to string, duration, maxCapacity int) {
	arrival := t + duration
	if arrival > g.Horizon {
		return
	}
	g.addEdge(from, t, to, arrival, maxCapacity)
}

func (g *Graph) addEdge(fromHub string, fromTurn int, toHub string, toTurn, maxCapacity int) {
	srcHandle, ok := g.index[nodeKey{fromHub, fromTurn}]
	if !ok {
		return
	}
	dstHandle, ok := g.index[nodeKey{toHub, toTurn}]
	if !ok {
		return
	}

	edgeHandle := EdgeHandle(len(g.edges))
	g.edges = append(g.edges, TimeEdge{
		Source: srcHandle, Target: dstHandle,
		FromHub: fromHub, ToHub: toHub,
		FromTurn: fromTurn, ToTurn: toTurn,
		MaxCapacity: maxCapacity,
	})
	g.adjacency[srcHandle] = append(g.adjacency[srcHandle], edgeHandle)
}

// Node returns a pointer into the graph's stable node storage. The pointer
// remains valid for the lifetime of g (Build never reallocates afterwards).
func (g *Graph) Node(h NodeHandle) *TimeNode { return &g.nodes[h] }

// NodeAt looks up the handle for (hubName, turn), per spec §3's TimeNode
// identity rule.
func (g *Graph) NodeAt(hubName string, turn int) (NodeHandle, bool) {
	h, ok := g.index[nodeKey{hubName, turn}]
	return h, ok
}

// Edge returns a pointer into the graph's stable edge storage.
func (g *Graph) Edge(h EdgeHandle) *TimeEdge { return &g.edges[h] }

// Out returns the outgoing edge handles of node h, in construction order.
func (g *Graph) Out(h NodeHandle) []EdgeHandle { return g.adjacency[h] }

// NumNodes returns the total node count.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the total edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Stats returns a read-only diagnostic snapshot of the built graph.
func (g *Graph) Stats() Stats {
	s := Stats{NodeCount: len(g.nodes), EdgeCount: len(g.edges)}
	for _, e := range g.edges {
		if e.IsMove() {
			s.MoveEdgeCount++
		} else {
			s.WaitEdgeCount++
		}
	}
	return s
}
