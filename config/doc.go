// Package config parses the external YAML topology description into a
// topology.Topology, the way the teacher's own CLI collaborators decode
// their YAML config files with gopkg.in/yaml.v3 (spec §6's "Topology input
// as consumed from the external parser").
//
// MissingEndpoint (spec §7) is raised here rather than in the core: a
// missing or duplicated START/END is a parse-time defect, not a routing
// failure.
package config
