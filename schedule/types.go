package schedule

import "github.com/aeromesh/skyroute/pathfinder"

// Route is one drone's committed path through the TEG, in visiting order.
// Steps[0] is always the drone's (START, 0) node.
type Route struct {
	Drone int
	Steps []pathfinder.Step
}
