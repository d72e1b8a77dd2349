package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeromesh/skyroute/pathfinder"
	"github.com/aeromesh/skyroute/reservation"
	"github.com/aeromesh/skyroute/teg"
	"github.com/aeromesh/skyroute/topology"
)

func TestFindRoute_LinearPath(t *testing.T) {
	top := topology.NewTopology(1)
	require.NoError(t, top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "w1", MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 1}))
	require.NoError(t, top.AddConnection("start", "w1", 1))
	require.NoError(t, top.AddConnection("w1", "goal", 1))

	g, err := teg.Build(top, 2)
	require.NoError(t, err)
	tr := reservation.New(g)

	startHandle, ok := g.NodeAt("start", 0)
	require.True(t, ok)

	route, err := pathfinder.FindRoute(g, tr, startHandle)
	require.NoError(t, err)
	require.Len(t, route, 3)

	names := make([]string, len(route))
	for i, step := range route {
		names[i] = g.Node(step.Node).Hub.Name
	}
	require.Equal(t, []string{"start", "w1", "goal"}, names)
}

func TestFindRoute_PrefersPriorityOnTie(t *testing.T) {
	top := topology.NewTopology(1)
	require.NoError(t, top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "a", MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "b", Zone: topology.ZonePriority, MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 1}))
	require.NoError(t, top.AddConnection("start", "a", 1))
	require.NoError(t, top.AddConnection("start", "b", 1))
	require.NoError(t, top.AddConnection("a", "goal", 1))
	require.NoError(t, top.AddConnection("b", "goal", 1))

	g, err := teg.Build(top, 2)
	require.NoError(t, err)
	tr := reservation.New(g)

	startHandle, ok := g.NodeAt("start", 0)
	require.True(t, ok)

	route, err := pathfinder.FindRoute(g, tr, startHandle)
	require.NoError(t, err)
	require.Len(t, route, 3)
	require.Equal(t, "b", g.Node(route[1].Node).Hub.Name)
}

func TestFindRoute_NoRouteWhenHorizonTooShort(t *testing.T) {
	top := topology.NewTopology(1)
	require.NoError(t, top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 1}))
	require.NoError(t, top.AddConnection("start", "goal", 1))

	g, err := teg.Build(top, 0)
	require.NoError(t, err)
	tr := reservation.New(g)

	startHandle, ok := g.NodeAt("start", 0)
	require.True(t, ok)

	_, err = pathfinder.FindRoute(g, tr, startHandle)
	require.ErrorIs(t, err, pathfinder.ErrNoRoute)
}
