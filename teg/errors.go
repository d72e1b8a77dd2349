package teg

import "errors"

var (
	// ErrNoStart indicates the topology passed to Build has no START hub.
	ErrNoStart = errors.New("teg: topology has no START hub")

	// ErrNegativeHorizon indicates Build was called with horizon < 0.
	ErrNegativeHorizon = errors.New("teg: horizon must be non-negative")
)
