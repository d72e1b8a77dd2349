package fixtures

// Option customizes Topology's bounds before any value is drawn. It mutates
// a genConfig in place, mirroring the teacher builder package's
// BuilderOption/builderConfig split.
type Option func(cfg *genConfig)

type genConfig struct {
	maxHubs            int
	maxDrones          int
	guaranteeReachable bool
}

func newGenConfig(opts ...Option) *genConfig {
	cfg := &genConfig{maxHubs: 8, maxDrones: 4, guaranteeReachable: false}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxHubs bounds the number of intermediate hubs Topology may add
// (START and END always exist in addition). Values below 1 are ignored.
func WithMaxHubs(n int) Option {
	return func(cfg *genConfig) {
		if n >= 1 {
			cfg.maxHubs = n
		}
	}
}

// WithMaxDrones bounds nb_drones. Values below 1 are ignored.
func WithMaxDrones(n int) Option {
	return func(cfg *genConfig) {
		if n >= 1 {
			cfg.maxDrones = n
		}
	}
}

// GuaranteeReachable forces Topology to always wire a connected path from
// START to END (via a random spanning tree over non-blocked hubs), on top
// of whatever extra random edges it also adds. Without this option, a
// generated Topology may legitimately be unreachable, which is itself a
// useful case for exercising router.UnreachableTopologyError.
func GuaranteeReachable() Option {
	return func(cfg *genConfig) { cfg.guaranteeReachable = true }
}
