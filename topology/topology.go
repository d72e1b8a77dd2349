package topology

// Topology is the frozen, static routing input: a named set of hubs, the
// undirected connections between them, and the number of drones to route
// from the single START hub to the single END hub.
//
// Topology is built once via NewTopology/AddHub/AddConnection by an external
// collaborator (see the config package) and is never mutated by the engine
// afterwards. Iteration order of Hubs and Connections is insertion order,
// so that two engine runs over the same parsed input produce byte-identical
// output (spec §5, Determinism).
type Topology struct {
	NbDrones int

	hubs        map[string]*Hub
	hubOrder    []string
	connections []Connection
	// adjacency[name] lists, in insertion order, the connections touching
	// hub name. Populated by AddConnection.
	adjacency map[string][]Connection
}

// NewTopology creates an empty Topology for the given drone count.
func NewTopology(nbDrones int) *Topology {
	return &Topology{
		NbDrones:  nbDrones,
		hubs:      make(map[string]*Hub),
		adjacency: make(map[string][]Connection),
	}
}

// AddHub registers a hub. Returns ErrEmptyHubName or ErrDuplicateHub on
// invalid input; otherwise idempotent-free (duplicates are rejected, not
// merged, since two distinct Hub values for the same name would be an
// ambiguous input).
func (t *Topology) AddHub(h Hub) error {
	if h.Name == "" {
		return ErrEmptyHubName
	}
	if _, exists := t.hubs[h.Name]; exists {
		return ErrDuplicateHub
	}
	hub := h
	t.hubs[h.Name] = &hub
	t.hubOrder = append(t.hubOrder, h.Name)

	return nil
}

// AddConnection registers an undirected connection between two existing,
// distinct hubs. Returns ErrUnknownHub, ErrSelfConnection,
// ErrDuplicateConnection, or ErrBadCapacity on invalid input.
func (t *Topology) AddConnection(a, b string, maxLinkCapacity int) error {
	if _, ok := t.hubs[a]; !ok {
		return ErrUnknownHub
	}
	if _, ok := t.hubs[b]; !ok {
		return ErrUnknownHub
	}
	if a == b {
		return ErrSelfConnection
	}
	if maxLinkCapacity < 1 {
		return ErrBadCapacity
	}
	for _, c := range t.connections {
		if (c.A == a && c.B == b) || (c.A == b && c.B == a) {
			return ErrDuplicateConnection
		}
	}

	c := Connection{A: a, B: b, MaxLinkCapacity: maxLinkCapacity}
	t.connections = append(t.connections, c)
	t.adjacency[a] = append(t.adjacency[a], c)
	t.adjacency[b] = append(t.adjacency[b], c)

	return nil
}

// Hub looks up a hub by name.
func (t *Topology) Hub(name string) (*Hub, bool) {
	h, ok := t.hubs[name]
	return h, ok
}

// Hubs returns every hub in insertion (parse) order.
func (t *Topology) Hubs() []*Hub {
	out := make([]*Hub, 0, len(t.hubOrder))
	for _, name := range t.hubOrder {
		out = append(out, t.hubs[name])
	}
	return out
}

// NonBlockedHubs returns every hub whose Zone is not ZoneBlocked, in
// insertion order.
func (t *Topology) NonBlockedHubs() []*Hub {
	out := make([]*Hub, 0, len(t.hubOrder))
	for _, name := range t.hubOrder {
		if h := t.hubs[name]; !h.Blocked() {
			out = append(out, h)
		}
	}
	return out
}

// Connections returns every connection in insertion order.
func (t *Topology) Connections() []Connection {
	return append([]Connection(nil), t.connections...)
}

// Neighbors returns the connections touching hub name, in insertion order.
// The caller is responsible for skipping connections whose other endpoint
// is blocked; Topology itself does not filter.
func (t *Topology) Neighbors(name string) []Connection {
	return append([]Connection(nil), t.adjacency[name]...)
}

// Start returns the single START hub. Assumes Validate has already passed;
// behavior on an invalid topology is to return the first START hub found
// in insertion order, or false if none exists.
func (t *Topology) Start() (*Hub, bool) {
	return t.hubByCategory(CategoryStart)
}

// End returns the single END hub, analogous to Start.
func (t *Topology) End() (*Hub, bool) {
	return t.hubByCategory(CategoryEnd)
}

func (t *Topology) hubByCategory(cat Category) (*Hub, bool) {
	for _, name := range t.hubOrder {
		if h := t.hubs[name]; h.Category == cat {
			return h, true
		}
	}
	return nil, false
}
