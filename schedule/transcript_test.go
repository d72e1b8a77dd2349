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

func TestEmit_RestrictedTraversalEmitsBothTurns(t *testing.T) {
	top := topology.NewTopology(1)
	require.NoError(t, top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "r", Zone: topology.ZoneRestricted, MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 1}))
	require.NoError(t, top.AddConnection("start", "r", 1))
	require.NoError(t, top.AddConnection("r", "goal", 1))

	g, err := teg.Build(top, 3)
	require.NoError(t, err)
	tr := reservation.New(g)

	startHandle, ok := g.NodeAt("start", 0)
	require.True(t, ok)
	route, err := pathfinder.FindRoute(g, tr, startHandle)
	require.NoError(t, err)

	sched := schedule.Emit(g, []schedule.Route{{Drone: 1, Steps: route}})
	require.Equal(t, []string{"D1-start-r", "D1-start-r", "D1-goal"}, sched.Lines())
	require.Equal(t, "D1-start-r\nD1-start-r\nD1-goal", sched.String())
}

func TestEmit_TwoDronesCapacityContention(t *testing.T) {
	top := topology.NewTopology(2)
	require.NoError(t, top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 2}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "w1", MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "w2", MaxDrones: 1}))
	require.NoError(t, top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 2}))
	require.NoError(t, top.AddConnection("start", "w1", 1))
	require.NoError(t, top.AddConnection("w1", "w2", 1))
	require.NoError(t, top.AddConnection("w2", "goal", 1))

	g, err := teg.Build(top, 4)
	require.NoError(t, err)
	tr := reservation.New(g)
	startHandle, ok := g.NodeAt("start", 0)
	require.True(t, ok)

	route1, err := pathfinder.FindRoute(g, tr, startHandle)
	require.NoError(t, err)
	r1 := schedule.Route{Drone: 1, Steps: route1}
	schedule.Reserve(g, tr, r1)

	route2, err := pathfinder.FindRoute(g, tr, startHandle)
	require.NoError(t, err)
	r2 := schedule.Route{Drone: 2, Steps: route2}
	schedule.Reserve(g, tr, r2)

	sched := schedule.Emit(g, []schedule.Route{r1, r2})
	require.Equal(t, []string{
		"D1-w1",
		"D1-w2 D2-w1",
		"D1-goal D2-w2",
		"D2-goal",
	}, sched.Lines())
}
