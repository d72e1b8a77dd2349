package horizon

import (
	"container/heap"

	"github.com/aeromesh/skyroute/topology"
)

// HasPath runs a weight-agnostic breadth-first search over non-blocked
// hubs from START to END. It is the early, capacity-ignorant reachability
// check spec §4.1 calls for before any TEG is built.
func HasPath(top *topology.Topology) bool {
	start, ok := top.Start()
	if !ok {
		return false
	}
	end, ok := top.End()
	if !ok {
		return false
	}
	if start.Name == end.Name {
		return true
	}

	visited := map[string]bool{start.Name: true}
	queue := []string{start.Name}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, conn := range top.Neighbors(cur) {
			next := conn.Other(cur)
			hub, ok := top.Hub(next)
			if !ok || hub.Blocked() || visited[next] {
				continue
			}
			if next == end.Name {
				return true
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return false
}

// MinPathCost computes the minimum traversal cost from START to END, where
// entering a RESTRICTED hub costs 2 and entering any other non-blocked hub
// costs 1; START itself contributes 0. Returns ok=false if END is
// unreachable.
func MinPathCost(top *topology.Topology) (cost int, ok bool) {
	start, hasStart := top.Start()
	end, hasEnd := top.End()
	if !hasStart || !hasEnd {
		return 0, false
	}
	if start.Name == end.Name {
		return 0, true
	}

	dist := map[string]int{start.Name: 0}
	pq := make(costPQ, 0, 1)
	heap.Push(&pq, &costItem{hub: start.Name, cost: 0})

	visited := map[string]bool{}
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*costItem)
		if visited[item.hub] {
			continue
		}
		visited[item.hub] = true
		if item.hub == end.Name {
			return item.cost, true
		}

		for _, conn := range top.Neighbors(item.hub) {
			next := conn.Other(item.hub)
			hub, exists := top.Hub(next)
			if !exists || hub.Blocked() || visited[next] {
				continue
			}
			candidate := item.cost + hub.Zone.EntryDuration()
			if best, seen := dist[next]; seen && candidate >= best {
				continue
			}
			dist[next] = candidate
			heap.Push(&pq, &costItem{hub: next, cost: candidate})
		}
	}

	return 0, false
}

// Horizon computes H = MinPathCost + (nb_drones - 1), the maximum turn
// index represented in the time-expanded graph (spec §4.1). Returns
// ErrUnreachable if END cannot be reached from START at all.
func Horizon(top *topology.Topology) (int, error) {
	cost, ok := MinPathCost(top)
	if !ok {
		return 0, ErrUnreachable
	}
	return cost + (top.NbDrones - 1), nil
}

type costItem struct {
	hub  string
	cost int
}

type costPQ []*costItem

func (pq costPQ) Len() int            { return len(pq) }
func (pq costPQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq costPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
