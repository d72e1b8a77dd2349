package topology

import "errors"

// Sentinel errors returned by Topology construction and Validate.
var (
	ErrEmptyHubName           = errors.New("topology: hub name is empty")
	ErrDuplicateHub           = errors.New("topology: duplicate hub name")
	ErrUnknownHub             = errors.New("topology: connection references unknown hub")
	ErrSelfConnection         = errors.New("topology: connection endpoints are identical")
	ErrDuplicateConnection    = errors.New("topology: duplicate connection between the same hubs")
	ErrBadCapacity            = errors.New("topology: capacity must be at least 1")
	ErrMissingStart           = errors.New("topology: no START hub")
	ErrMultipleStart          = errors.New("topology: more than one START hub")
	ErrMissingEnd             = errors.New("topology: no END hub")
	ErrMultipleEnd            = errors.New("topology: more than one END hub")
	ErrEndpointCapacityTooLow = errors.New("topology: START or END max_drones below nb_drones")
	ErrNoDrones               = errors.New("topology: nb_drones must be positive")
)
