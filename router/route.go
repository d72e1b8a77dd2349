package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/aeromesh/skyroute/horizon"
	"github.com/aeromesh/skyroute/pathfinder"
	"github.com/aeromesh/skyroute/reservation"
	"github.com/aeromesh/skyroute/schedule"
	"github.com/aeromesh/skyroute/teg"
	"github.com/aeromesh/skyroute/topology"
)

// Route is the engine's single entry point (spec §6): it estimates the
// horizon, builds the TEG once, then runs the sequential per-drone
// pathfinder/reserve loop described in spec §4.5 before rendering the
// transcript. The returned teg.Stats lets a caller (the CLI's --verbose
// path) log TEG size without the engine itself doing any logging.
//
// ctx is checked between drones only; the core has no suspension points
// of its own (spec §5), so cancellation can only take effect at a drone
// boundary. Route assumes top has already passed topology.Topology.Validate
// — MissingEndpoint is the config package's concern, not the core's.
func Route(ctx context.Context, top *topology.Topology) ([]schedule.Route, schedule.Schedule, teg.Stats, error) {
	h, err := horizon.Horizon(top)
	if err != nil {
		return nil, schedule.Schedule{}, teg.Stats{}, &UnreachableTopologyError{Start: hubName(top.Start), End: hubName(top.End)}
	}

	g, err := teg.Build(top, h)
	if err != nil {
		return nil, schedule.Schedule{}, teg.Stats{}, &InvariantViolationError{Detail: err.Error()}
	}

	start, _ := top.Start()
	startHandle, ok := g.NodeAt(start.Name, 0)
	if !ok {
		return nil, schedule.Schedule{}, teg.Stats{}, &InvariantViolationError{Detail: "(START, 0) node missing from built TEG"}
	}

	tracker := reservation.New(g)
	routes := make([]schedule.Route, 0, top.NbDrones)

	for d := 1; d <= top.NbDrones; d++ {
		if err := ctx.Err(); err != nil {
			return nil, schedule.Schedule{}, teg.Stats{}, err
		}

		steps, err := pathfinder.FindRoute(g, tracker, startHandle)
		if err != nil {
			if errors.Is(err, pathfinder.ErrNoRoute) {
				return nil, schedule.Schedule{}, teg.Stats{}, &InfeasibleScheduleError{Drone: d}
			}
			return nil, schedule.Schedule{}, teg.Stats{}, &InvariantViolationError{Detail: err.Error()}
		}

		r := schedule.Route{Drone: d, Steps: steps}
		schedule.Reserve(g, tracker, r)
		routes = append(routes, r)
	}

	if err := verifyOccupancy(g); err != nil {
		return nil, schedule.Schedule{}, teg.Stats{}, err
	}

	return routes, schedule.Emit(g, routes), g.Stats(), nil
}

// hubName resolves a hub lookup to its name, or "?" if the hub is absent —
// used only for diagnostic messages on already-failing paths.
func hubName(lookup func() (*topology.Hub, bool)) string {
	h, ok := lookup()
	if !ok {
		return "?"
	}
	return h.Name
}

// verifyOccupancy re-checks spec §3's vertex-capacity invariant
// (occupancy <= hub.MaxDrones) across every TimeNode after every drone has
// committed, excluding (START, 0)'s documented seed-and-exempt case. A
// failure here means the sequential assembler accepted a route the
// reservation tracker should have rejected — an engine bug, not bad input.
func verifyOccupancy(g *teg.Graph) error {
	for i := 0; i < g.NumNodes(); i++ {
		n := g.Node(teg.NodeHandle(i))
		if n.Turn == 0 && n.Hub.Category == topology.CategoryStart {
			continue
		}
		if n.Occupancy > n.Hub.MaxDrones {
			return &InvariantViolationError{Detail: fmt.Sprintf("%s@%d occupancy %d exceeds capacity %d", n.Hub.Name, n.Turn, n.Occupancy, n.Hub.MaxDrones)}
		}
	}
	return nil
}
