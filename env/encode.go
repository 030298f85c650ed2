package env

import "github.com/kaienlin/tcgsim/vehicle"

// stateStatesRadix is the number of values vehicle.State can take
// (NotArrived, Ready, Blocked, Moving, Left).
const stateStatesRadix = 5

// radixFor returns the per-vehicle multiplier used when folding vehicle i
// into the mixed-radix state id: one slot per (PositionIndex+1) value,
// times one slot per vehicle.State value.
func (a *Adapter) radixFor(i int) int64 {
	return int64(a.trajLens[i]+2) * stateStatesRadix
}

func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// EncodeState composes the current simulator snapshot into a single
// non-negative integer: per vehicle (in Adapter's fixed order),
// (PositionIndex+1)*5 + int(State), mixed-radix folded, then folded again
// with (Timestamp mod horizon). DecodeState recovers every vehicle's
// (PositionIndex, State) exactly, but only the timestamp's residue: two
// snapshots with the same per-vehicle vectors whose timestamps differ by
// a multiple of horizon encode to the same id.
func (a *Adapter) EncodeState() int64 {
	var id int64
	for i, vehID := range a.vehicleIDs {
		v, _ := a.sim.Vehicle(vehID)
		component := int64(v.PositionIndex+1)*stateStatesRadix + int64(v.State)
		id = id*a.radixFor(i) + component
	}
	return id*a.horizon + floorMod(a.sim.Timestamp(), a.horizon)
}

// DecodeState inverts EncodeState. It never fails: every non-negative id
// decodes to some State, though only ids actually produced by EncodeState
// correspond to a reachable simulator snapshot.
func (a *Adapter) DecodeState(id int64) State {
	residue := floorMod(id, a.horizon)
	id /= a.horizon

	n := len(a.vehicleIDs)
	positions := make([]int, n)
	states := make([]vehicle.State, n)

	for i := n - 1; i >= 0; i-- {
		radix := a.radixFor(i)
		component := floorMod(id, radix)
		id /= radix
		positions[i] = int(component/stateStatesRadix) - 1
		states[i] = vehicle.State(component % stateStatesRadix)
	}

	return State{
		Positions:        positions,
		VehicleStates:    states,
		TimestampResidue: residue,
	}
}

// EncodeAction maps a vehicle id to its action slot (1..N); the empty
// string (the no-op) maps to 0.
func (a *Adapter) EncodeAction(vehicleID string) (int, error) {
	if vehicleID == "" {
		return 0, nil
	}
	idx, ok := a.vehicleIdx[vehicleID]
	if !ok {
		return 0, ErrUnknownVehicle
	}
	return idx + 1, nil
}

// DecodeAction inverts EncodeAction: 0 decodes to the no-op ("").
func (a *Adapter) DecodeAction(action int) (string, error) {
	if action < 0 || action >= a.ActionSpaceSize() {
		return "", ErrActionOutOfRange
	}
	if action == 0 {
		return "", nil
	}
	return a.vehicleIDs[action-1], nil
}

// IsEffectiveActionOfState reports whether decoding action in the given
// (already-encoded) state would hand the Simulator a vehicle whose next
// vertex is executable there — i.e. whether the action is anything other
// than a silent no-op. The no-op action is always considered effective:
// it deterministically advances the clock per step.ordering rule 4.
//
// This only needs the decoded per-vehicle State component, not the live
// Simulator, because a vehicle's State is set to READY (step.go, rule 8)
// exactly when its next vertex's earliest entering time equals the
// current timestamp — the same condition that defines "executable".
func (a *Adapter) IsEffectiveActionOfState(action int, s int64) bool {
	vehID, err := a.DecodeAction(action)
	if err != nil {
		return false
	}
	if vehID == "" {
		return true
	}
	idx := a.vehicleIdx[vehID]
	decoded := a.DecodeState(s)
	return decoded.VehicleStates[idx] == vehicle.Ready
}
