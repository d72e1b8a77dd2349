package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aeromesh/skyroute/pathfinder"
	"github.com/aeromesh/skyroute/reservation"
	"github.com/aeromesh/skyroute/schedule"
	"github.com/aeromesh/skyroute/teg"
	"github.com/aeromesh/skyroute/topology"
)

func TestReserve_ExemptsStartNodeFromOccupancy(t *testing.T) {
	top := topology.NewTopology(1)
	require.NoError(t, top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 1}))
	require.NoError(t, top.AddConnection("start", "goal", 1))

	g, err := teg.Build(top, 1)
	require.NoError(t, err)
	tr := reservation.New(g)
	startHandle, ok := g.NodeAt("start", 0)
	require.True(t, ok)

	route, err := pathfinder.FindRoute(g, tr, startHandle)
	require.NoError(t, err)

	schedule.Reserve(g, tr, schedule.Route{Drone: 1, Steps: route})

	require.Equal(t, 1, g.Node(startHandle).Occupancy, "seeded by Build, untouched by Reserve")
	goalHandle, ok := g.NodeAt("goal", 1)
	require.True(t, ok)
	require.Equal(t, 1, g.Node(goalHandle).Occupancy)
}

func TestReserve_SecondDroneBlockedByExhaustedEdgeCapacity(t *testing.T) {
	top := topology.NewTopology(2)
	require.NoError(t, top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 2}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 2}))
	require.NoError(t, top.AddConnection("start", "goal", 1))

	g, err := teg.Build(top, 1)
	require.NoError(t, err)
	tr := reservation.New(g)
	startHandle, ok := g.NodeAt("start", 0)
	require.True(t, ok)

	route, err := pathfinder.FindRoute(g, tr, startHandle)
	require.NoError(t, err)
	schedule.Reserve(g, tr, schedule.Route{Drone: 1, Steps: route})

	_, err = pathfinder.FindRoute(g, tr, startHandle)
	require.ErrorIs(t, err, pathfinder.ErrNoRoute, "single-capacity edge exhausted by drone 1 within horizon 1")
}
