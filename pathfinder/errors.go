package pathfinder

import "errors"

// ErrNoRoute is returned when the frontier is exhausted before reaching a
// terminal (END) node.
var ErrNoRoute = errors.New("pathfinder: no feasible route to END")
