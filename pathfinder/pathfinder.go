package pathfinder

import (
	"container/heap"

	"github.com/aeromesh/skyroute/reservation"
	"github.com/aeromesh/skyroute/teg"
)

// Cost is the lexicographic key compared during relaxation: (Turn,
// PriorityCount), minimizing Turn first and, among ties, maximizing
// PriorityCount (spec §4.4).
type Cost struct {
	Turn          int
	PriorityCount int
}

// better reports whether a is strictly preferable to b under the
// lexicographic ordering (Turn asc, PriorityCount desc).
func (a Cost) better(b Cost) bool {
	if a.Turn != b.Turn {
		return a.Turn < b.Turn
	}
	return a.PriorityCount > b.PriorityCount
}

// Step is one hop of a found route: the TimeNode arrived at, and the edge
// used to arrive there (zero-value Edge for the starting node, which has
// no predecessor edge).
type Step struct {
	Node teg.NodeHandle
	Edge teg.EdgeHandle
	// HasEdge distinguishes the start node (no predecessor) from a real
	// hop, since the zero EdgeHandle is also a valid handle value.
	HasEdge bool
}

// FindRoute runs the lexicographic Dijkstra described in spec §4.4 from
// start to the first settled node whose hub is END, honoring tracker's
// current reservations and g's TimeNode.Occupancy. start is exempted from
// the vertex-capacity check (spec's START@0 rule); the caller passes the
// handle for (START, 0).
//
// Returns the settled route as an ordered slice of Steps from start to the
// first reached END node, or ErrNoRoute if the frontier is exhausted first.
func FindRoute(g *teg.Graph, tracker *reservation.Tracker, start teg.NodeHandle) ([]Step, error) {
	best := map[teg.NodeHandle]Cost{start: {Turn: g.Node(start).Turn}}
	settled := map[teg.NodeHandle]bool{}
	prevNode := map[teg.NodeHandle]teg.NodeHandle{}
	prevEdge := map[teg.NodeHandle]teg.EdgeHandle{}
	hasPrev := map[teg.NodeHandle]bool{}

	pq := &nodePQ{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &pqItem{node: start, cost: best[start], seq: seq})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		u := item.node
		if settled[u] {
			continue
		}
		settled[u] = true

		if g.Node(u).IsTerminal() {
			return reconstruct(u, prevNode, prevEdge, hasPrev), nil
		}

		for _, eh := range g.Out(u) {
			edge := g.Edge(eh)
			v := edge.Target

			if settled[v] {
				continue
			}
			if !tracker.EdgeTraversable(eh) {
				continue
			}
			if v != start && !tracker.CanEnter(v) {
				continue
			}

			candidate := Cost{
				Turn:          item.cost.Turn + edge.Duration(),
				PriorityCount: item.cost.PriorityCount,
			}
			if g.Node(v).IsPriority() {
				candidate.PriorityCount++
			}

			if prior, seen := best[v]; seen && !candidate.better(prior) {
				continue
			}

			best[v] = candidate
			prevNode[v] = u
			prevEdge[v] = eh
			hasPrev[v] = true

			seq++
			heap.Push(pq, &pqItem{node: v, cost: candidate, seq: seq})
		}
	}

	return nil, ErrNoRoute
}

func reconstruct(end teg.NodeHandle, prevNode map[teg.NodeHandle]teg.NodeHandle, prevEdge map[teg.NodeHandle]teg.EdgeHandle, hasPrev map[teg.NodeHandle]bool) []Step {
	var reversed []Step
	cur := end
	for {
		step := Step{Node: cur}
		if hasPrev[cur] {
			step.Edge = prevEdge[cur]
			step.HasEdge = true
		}
		reversed = append(reversed, step)
		if !hasPrev[cur] {
			break
		}
		cur = prevNode[cur]
	}

	out := make([]Step, len(reversed))
	for i, s := range reversed {
		out[len(reversed)-1-i] = s
	}
	return out
}

// pqItem is one priority-queue entry: a candidate node, its lexicographic
// cost, and a monotonic insertion sequence number that breaks ties
// deterministically (spec §4.4's "Tie-break determinism").
type pqItem struct {
	node teg.NodeHandle
	cost Cost
	seq  int
}

type nodePQ []*pqItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost.better(pq[j].cost)
	}
	return pq[i].seq < pq[j].seq
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
