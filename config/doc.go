// Package config loads intersection and traffic descriptions from JSON,
// per spec.md §6's "External Interfaces": the core only requires an
// accessor interface, so this package is pure ambient I/O glue between a
// JSON document on disk and an *intersection.Intersection /
// []VehicleSpec in memory. File layout is implementation-defined (spec.md
// §6's Non-goal on persisted-state file layout), not a wire contract.
package config
