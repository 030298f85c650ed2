package vehicle

// Reset restores the vehicle to its pre-run state: PositionIndex = -1,
// State = NotArrived. Called by Simulator.restart for every vehicle.
// Complexity: O(1).
func (v *Vehicle) Reset() {
	v.PositionIndex = -1
	v.State = NotArrived
}

// MoveToNextCZ advances PositionIndex by one step, following a vehicle
// from "^" through each trajectory index up to and including the "$"
// sentinel (PositionIndex == len(Trajectory)). Called once per
// Simulator.step when this vehicle's vertex starts executing.
// Complexity: O(1).
func (v *Vehicle) MoveToNextCZ() {
	if v.PositionIndex < len(v.Trajectory) {
		v.PositionIndex++
	}
}

// CurCZ returns the CZ id the vehicle currently occupies, or the "^"
// sentinel if it has not yet entered, or the "$" sentinel if it has
// departed.
// Complexity: O(1).
func (v *Vehicle) CurCZ() string {
	switch {
	case v.PositionIndex < 0:
		return EnteredSentinel
	case v.PositionIndex >= len(v.Trajectory):
		return DepartedSentinel
	default:
		return v.Trajectory[v.PositionIndex]
	}
}

// SetState overwrites the vehicle's lifecycle state. The simulator is the
// sole caller; no transition validation is performed here (step.go is the
// single source of truth for which transitions are legal).
// Complexity: O(1).
func (v *Vehicle) SetState(s State) {
	v.State = s
}

// IsFirstTrajectoryVertex reports whether cz is the vehicle's entry CZ.
// Complexity: O(1).
func (v *Vehicle) IsFirstTrajectoryVertex(cz string) bool {
	return len(v.Trajectory) > 0 && v.Trajectory[0] == cz
}
