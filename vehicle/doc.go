// Package vehicle defines the mutable vehicle actor: its arrival time,
// its ordered CZ trajectory, its passing time, and its state machine
// (NOT_ARRIVED -> READY/BLOCKED -> MOVING -> ... -> LEFT).
//
// A Vehicle never mutates the Intersection or the TCG; it is driven
// exclusively by the Simulator, which owns every Vehicle for the lifetime
// of a run. PositionIndex follows spec.md's "^"/"$" sentinel convention:
// -1 means not yet entered, len(Trajectory) means departed.
package vehicle
