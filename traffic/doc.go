// Package traffic defines the external traffic-producer boundary spec.md
// §1 keeps out of scope ("random-traffic generators (treated as external
// producers)"): a Generator interface the CLI drives by name, plus the one
// concrete implementation needed to make the interface useful standalone
// — reading a fixed traffic file. Stochastic generators (Poisson arrivals,
// random trajectories, etc.) are real implementations of this interface
// but are not required to be exhaustive; a caller may plug in its own.
package traffic
