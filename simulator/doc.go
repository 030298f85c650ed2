// Package simulator drives a Timing Conflict Graph through simulated time.
//
// Simulator owns the vehicle set and the intersection description, builds
// the tcg.Graph from them on start, and steps it one decision at a time:
// at each tick the caller names which (if any) currently executable vehicle
// should advance into its next conflict zone, and Simulator resolves the
// resulting state transitions, recomputes readiness, and reports delay
// metrics. The stepping rule is deterministic — given the same vehicle set
// and the same sequence of moved-vehicle choices, two Simulator instances
// produce byte-identical traces.
package simulator
