// Package env presents a simulator.Simulator as a discrete-state,
// discrete-action reinforcement-learning environment: Reset/Step/
// EncodeAction/DecodeAction/EncodeState/IsEffectiveActionOfState, in the
// Gym-style shape spec.md §6 describes for the trainer<->environment
// protocol.
//
// State ids and action ids are plain ints so the qlearning package can use
// them directly as table indices. The encoding is a mixed-radix integer
// over, per vehicle, (PositionIndex+1) and vehicle.State, composed with
// the simulated clock reduced modulo a configurable horizon — see
// encode.go. This is a deliberate trade: folding the clock keeps
// StateSpaceSize bounded for a DenseTable, at the cost of collapsing two
// reachable states with identical per-vehicle (position, state) vectors
// whose timestamps differ by a multiple of horizon into the same id once
// a run outlives horizon ticks. It is not guaranteed dense either way:
// most integers in [0, StateSpaceSize) are never visited by any real run.
package env
