package config

import "errors"

var (
	// ErrMissingEndpoint is returned when a file does not describe exactly
	// one START hub and exactly one END hub (spec §7, MissingEndpoint).
	ErrMissingEndpoint = errors.New("config: topology must have exactly one START hub and exactly one END hub")

	// ErrInvalidTopology wraps every joined topology.Validate failure so
	// callers can branch on it with errors.Is without unwrapping a specific
	// topology sentinel.
	ErrInvalidTopology = errors.New("config: invalid topology")
)
