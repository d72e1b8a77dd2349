// Package topology defines the static input to the routing engine: hubs,
// undirected connections between them, and the drone count that must be
// routed from the single START hub to the single END hub.
//
// A Topology is produced by an external collaborator (a map/config parser,
// see the config package) and is treated as immutable once constructed:
// every mutation happens through AddHub/AddConnection during assembly, and
// Validate reports every violated invariant at once rather than failing on
// the first one found.
//
// Errors:
//
//	ErrEmptyHubName        - a hub was added with an empty name.
//	ErrDuplicateHub        - a hub name was added more than once.
//	ErrUnknownHub          - a connection referenced a hub that was never added.
//	ErrSelfConnection      - a connection's two endpoints are the same hub.
//	ErrDuplicateConnection - the same unordered pair of hubs was connected twice.
//	ErrBadCapacity         - a capacity field was less than the required minimum.
//	ErrMissingStart        - no hub has Category == Start.
//	ErrMultipleStart       - more than one hub has Category == Start.
//	ErrMissingEnd          - no hub has Category == End.
//	ErrMultipleEnd         - more than one hub has Category == End.
//	ErrEndpointCapacityTooLow - START or END's MaxDrones is below NbDrones.
//	ErrNoDrones            - NbDrones is not positive.
package topology
