package horizon

import "errors"

// ErrUnreachable is returned by Horizon when END is not reachable from
// START on non-blocked hubs, ignoring capacity (spec §7,
// UnreachableTopology).
var ErrUnreachable = errors.New("horizon: END is not reachable from START")
