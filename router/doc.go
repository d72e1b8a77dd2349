// Package router ties the engine's leaves together into the single entry
// point spec.md §6 describes: horizon estimation, TEG construction, the
// sequential per-drone pathfinder/reserve loop, and transcript emission.
//
// Failures are reported as one of three exported error types
// (UnreachableTopologyError, InfeasibleScheduleError,
// InvariantViolationError), matching spec §7's taxonomy; MissingEndpoint
// is the config package's concern, since it belongs to the external
// parser rather than the core.
package router
