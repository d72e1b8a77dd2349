package pathfinder_test

import (
	"fmt"

	"github.com/aeromesh/skyroute/pathfinder"
	"github.com/aeromesh/skyroute/reservation"
	"github.com/aeromesh/skyroute/teg"
	"github.com/aeromesh/skyroute/topology"
)

func ExampleFindRoute() {
	top := topology.NewTopology(1)
	_ = top.AddHub(topology.Hub{Name: "start", Category: topology.CategoryStart, MaxDrones: 1})
	_ = top.AddHub(topology.Hub{Name: "goal", Category: topology.CategoryEnd, MaxDrones: 1})
	_ = top.AddConnection("start", "goal", 1)

	g, _ := teg.Build(top, 1)
	tr := reservation.New(g)
	start, _ := g.NodeAt("start", 0)

	route, err := pathfinder.FindRoute(g, tr, start)
	if err != nil {
		fmt.Println("no route:", err)
		return
	}
	for _, step := range route {
		node := g.Node(step.Node)
		fmt.Printf("%s@%d\n", node.Hub.Name, node.Turn)
	}
	// Output:
	// start@0
	// goal@1
}
