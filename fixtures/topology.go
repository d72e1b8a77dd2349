package fixtures

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/aeromesh/skyroute/topology"
)

var zones = []topology.Zone{
	topology.ZoneNormal,
	topology.ZoneNormal,
	topology.ZoneNormal,
	topology.ZoneRestricted,
	topology.ZonePriority,
	topology.ZoneBlocked,
}

// Topology draws a random topology.Topology that is guaranteed to satisfy
// topology.Topology.Validate(): exactly one START and one END, every hub
// with MaxDrones >= 1, and START/END with MaxDrones >= NbDrones (spec §8's
// "randomize Topology within the stated invariants").
//
// By default the generated graph may or may not connect START to END; pass
// GuaranteeReachable to force it, which is the shape most of router's
// property tests want.
func Topology(t *rapid.T, opts ...Option) *topology.Topology {
	cfg := newGenConfig(opts...)

	nbDrones := rapid.IntRange(1, cfg.maxDrones).Draw(t, "nbDrones")
	top := topology.NewTopology(nbDrones)

	startSlack := rapid.IntRange(0, 3).Draw(t, "startSlack")
	endSlack := rapid.IntRange(0, 3).Draw(t, "endSlack")
	mustAddHub(top, topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: nbDrones + startSlack})
	mustAddHub(top, topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: nbDrones + endSlack})

	names := []string{"start"}
	nbIntermediate := rapid.IntRange(0, cfg.maxHubs).Draw(t, "nbIntermediate")
	for i := 0; i < nbIntermediate; i++ {
		name := fmt.Sprintf("h%d", i)
		zone := rapid.SampledFrom(zones).Draw(t, "zone["+name+"]")
		maxDrones := rapid.IntRange(1, nbDrones+2).Draw(t, "maxDrones["+name+"]")
		mustAddHub(top, topology.Hub{Name: name, Zone: zone, MaxDrones: maxDrones})
		names = append(names, name)
	}
	names = append(names, "goal")

	if cfg.guaranteeReachable {
		wireSpanningChain(t, top, nonBlockedOrdered(t, top, names))
	}
	wireRandomExtraEdges(t, top, names)

	return top
}

// nonBlockedOrdered returns names' non-blocked entries in a rapid-drawn
// random permutation, with "start" forced first and "goal" forced last so
// the spanning chain always begins and ends at the right hubs.
func nonBlockedOrdered(t *rapid.T, top *topology.Topology, names []string) []string {
	middle := make([]string, 0, len(names))
	for _, n := range names {
		if n == "start" || n == "goal" {
			continue
		}
		if h, ok := top.Hub(n); ok && !h.Blocked() {
			middle = append(middle, n)
		}
	}
	shuffle(t, middle)

	ordered := make([]string, 0, len(middle)+2)
	ordered = append(ordered, "start")
	ordered = append(ordered, middle...)
	ordered = append(ordered, "goal")
	return ordered
}

// shuffle draws a Fisher-Yates permutation in place, entirely through t so
// a failing property shrinks reproducibly like every other draw here.
func shuffle(t *rapid.T, names []string) {
	for i := len(names) - 1; i > 0; i-- {
		j := rapid.IntRange(0, i).Draw(t, "shuffleSwap")
		names[i], names[j] = names[j], names[i]
	}
}

func wireSpanningChain(t *rapid.T, top *topology.Topology, order []string) {
	for i := 0; i+1 < len(order); i++ {
		capacity := rapid.IntRange(1, 3).Draw(t, "spanCap")
		_ = top.AddConnection(order[i], order[i+1], capacity)
	}
}

func wireRandomExtraEdges(t *rapid.T, top *topology.Topology, names []string) {
	if len(names) < 2 {
		return
	}
	nbExtra := rapid.IntRange(0, len(names)).Draw(t, "nbExtra")
	for i := 0; i < nbExtra; i++ {
		a := rapid.SampledFrom(names).Draw(t, "extraA")
		b := rapid.SampledFrom(names).Draw(t, "extraB")
		if a == b {
			continue
		}
		capacity := rapid.IntRange(1, 3).Draw(t, "extraCap")
		_ = top.AddConnection(a, b, capacity) // duplicates/self-loops rejected harmlessly
	}
}

func mustAddHub(top *topology.Topology, h topology.Hub) {
	if err := top.AddHub(h); err != nil {
		panic(err) // only possible on a caller bug: duplicate/empty name from this file itself
	}
}
