package env

import "github.com/kaienlin/tcgsim/simulator"

// Reset restarts the wrapped Simulator (spec.md §4.3: "calls
// simulator.restart()") and returns the encoded initial state. It returns
// the Simulator's error verbatim if Start was never called.
func (a *Adapter) Reset() (int64, error) {
	if err := a.sim.Restart(); err != nil {
		return 0, err
	}
	a.lastCumulative = a.sim.GetCumulativeDelayedTime()
	return a.EncodeState(), nil
}

// Step decodes action to a target vehicle id (or the no-op), advances the
// Simulator by one decision, and returns the next encoded state, the
// step's cost, whether the run is done, and an info map carrying the raw
// status string and timestamp for diagnostics.
//
// cost is the delta in GetCumulativeDelayedTime since the previous Step
// (or Reset), except on the tick DEADLOCK is reached, where cost is the
// fixed DeadlockPenalty — per spec.md §4.3 and §7, deadlock is not an
// exception at this boundary, only a terminal cost signal.
func (a *Adapter) Step(action int) (StepResult, error) {
	vehID, err := a.DecodeAction(action)
	if err != nil {
		return StepResult{}, err
	}

	if err := a.sim.Step(vehID); err != nil {
		return StepResult{}, err
	}

	status := a.sim.Status()
	done := status == simulator.Terminated || status == simulator.Deadlock

	var cost int64
	if status == simulator.Deadlock {
		cost = a.deadlockPenalty
	} else {
		cur := a.sim.GetCumulativeDelayedTime()
		cost = cur - a.lastCumulative
		a.lastCumulative = cur
	}

	return StepResult{
		NextState: a.EncodeState(),
		Cost:      cost,
		Done:      done,
		Info: map[string]any{
			"status":    status.String(),
			"timestamp": a.sim.Timestamp(),
		},
	}, nil
}
