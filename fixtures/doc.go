// Package fixtures generates randomized topology.Topology values for
// property-based tests, in the functional-options style of the teacher's
// own graph-builder package. Unlike that package, generation is driven by
// pgregory.net/rapid rather than math/rand directly: every draw goes
// through a *rapid.T so a failing property shrinks to a minimal
// counterexample instead of a raw seed.
package fixtures
