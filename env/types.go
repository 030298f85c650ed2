package env

import (
	"errors"

	"github.com/kaienlin/tcgsim/simulator"
	"github.com/kaienlin/tcgsim/vehicle"
)

// Sentinel errors for action/state encoding.
var (
	// ErrUnknownVehicle indicates EncodeAction was called with an id that
	// was never registered on the wrapped Simulator.
	ErrUnknownVehicle = errors.New("env: unknown vehicle id")

	// ErrActionOutOfRange indicates DecodeAction/IsEffectiveActionOfState
	// received an action id outside [0, ActionSpaceSize).
	ErrActionOutOfRange = errors.New("env: action id out of range")
)

// State is the decoded form of an encoded state id: one (position, vehicle
// state) pair per vehicle, in Adapter's fixed vehicle order, plus the
// timestamp residue that was folded into the id.
type State struct {
	Positions        []int
	VehicleStates    []vehicle.State
	TimestampResidue int64
}

// StepResult mirrors the Gym-style (next_state, cost, done, info) tuple of
// spec.md §6.
type StepResult struct {
	NextState int64
	Cost      int64
	Done      bool
	Info      map[string]any
}

// Adapter presents a *simulator.Simulator as a discrete-state,
// discrete-action RL environment. It must be constructed after every
// vehicle has been added to the wrapped Simulator (vehicle identities and
// trajectory lengths are captured once, at New, and are assumed fixed for
// the Adapter's lifetime — matching the Simulator's own rule that vehicles
// cannot be added or removed once RUNNING).
type Adapter struct {
	sim *simulator.Simulator

	vehicleIDs []string
	vehicleIdx map[string]int
	trajLens   []int // len(Trajectory) per vehicle, aligned with vehicleIDs

	horizon         int64
	deadlockPenalty int64

	lastCumulative int64
}

// Option configures an Adapter at construction.
type Option func(*Adapter)

// WithHorizon sets the modulus applied to the simulated clock when folding
// it into the encoded state id. Must be positive; the default is 64.
func WithHorizon(horizon int64) Option {
	return func(a *Adapter) {
		if horizon > 0 {
			a.horizon = horizon
		}
	}
}

// WithDeadlockPenalty sets the fixed cost reported for the step on which
// the Simulator transitions to DEADLOCK. The default is 1_000_000, large
// enough relative to any realistic delay sum to push a tabular agent's
// policy away from deadlocking schedules.
func WithDeadlockPenalty(penalty int64) Option {
	return func(a *Adapter) {
		a.deadlockPenalty = penalty
	}
}

// New wraps sim. sim must already have every vehicle added (AddVehicle),
// but Start need not have been called yet — Reset will call Restart,
// which requires Start to have run at least once.
func New(sim *simulator.Simulator, opts ...Option) *Adapter {
	vehicles := sim.Vehicles()
	a := &Adapter{
		sim:             sim,
		vehicleIDs:      make([]string, len(vehicles)),
		vehicleIdx:      make(map[string]int, len(vehicles)),
		trajLens:        make([]int, len(vehicles)),
		horizon:         64,
		deadlockPenalty: 1_000_000,
	}
	for i, v := range vehicles {
		a.vehicleIDs[i] = v.ID
		a.vehicleIdx[v.ID] = i
		a.trajLens[i] = len(v.Trajectory)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ActionSpaceSize returns len(vehicles)+1 (one slot per vehicle, plus the
// no-op at index 0).
func (a *Adapter) ActionSpaceSize() int {
	return len(a.vehicleIDs) + 1
}

// StateSpaceSize returns the size of the encoded state space: the product
// of each vehicle's (len(Trajectory)+2)*5 radix, times horizon. For large
// vehicle counts this can overflow int64; callers driving very large
// traffics should treat it as advisory only and fall back to a
// lazily-grown Q-table (see qlearning.MapTable).
func (a *Adapter) StateSpaceSize() int64 {
	size := a.horizon
	for _, n := range a.trajLens {
		size *= int64(n+2) * 5
	}
	return size
}
