package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeromesh/skyroute/reservation"
	"github.com/aeromesh/skyroute/teg"
	"github.com/aeromesh/skyroute/topology"
)

func restrictedTopology(t *testing.T) *topology.Topology {
	t.Helper()
	top := topology.NewTopology(2)
	require.NoError(t, top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 2}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "r", Zone: topology.ZoneRestricted, MaxDrones: 2}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 2}))
	require.NoError(t, top.AddConnection("start", "r", 1))
	require.NoError(t, top.AddConnection("r", "goal", 1))
	return top
}

func TestReserveEdge_ConsumesBothTurnsOfRestrictedEdge(t *testing.T) {
	top := restrictedTopology(t)
	g, err := teg.Build(top, 4)
	require.NoError(t, err)

	src, ok := g.NodeAt("start", 0)
	require.True(t, ok)
	var moveEdge teg.EdgeHandle
	for _, eh := range g.Out(src) {
		if g.Edge(eh).IsMove() {
			moveEdge = eh
		}
	}

	tr := reservation.New(g)
	require.True(t, tr.EdgeTraversable(moveEdge))

	tr.ReserveEdge(moveEdge)
	require.Equal(t, 1, tr.Occupied(moveEdge, 0))
	require.Equal(t, 1, tr.Occupied(moveEdge, 1))

	tr.ReserveEdge(moveEdge)
	require.False(t, tr.EdgeTraversable(moveEdge)) // capacity 1, now at 2
}

func TestCanEnter_RespectsHubCapacity(t *testing.T) {
	top := restrictedTopology(t)
	g, err := teg.Build(top, 2)
	require.NoError(t, err)

	node, ok := g.NodeAt("r", 2)
	require.True(t, ok)
	tr := reservation.New(g)
	require.True(t, tr.CanEnter(node))

	g.Node(node).Occupancy = 2
	require.False(t, tr.CanEnter(node))
}
