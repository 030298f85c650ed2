package vehicle

import "errors"

// Sentinel errors for vehicle construction.
var (
	// ErrEmptyID indicates a vehicle id was the empty string.
	ErrEmptyID = errors.New("vehicle: id is empty")

	// ErrEmptyTrajectory indicates a vehicle was constructed with no CZs to cross.
	ErrEmptyTrajectory = errors.New("vehicle: trajectory is empty")

	// ErrNegativeArrival indicates a negative earliest_arrival_time.
	ErrNegativeArrival = errors.New("vehicle: negative arrival time")

	// ErrNonPositivePassingTime indicates vertex_passing_time <= 0.
	ErrNonPositivePassingTime = errors.New("vehicle: passing time must be positive")
)

// State is a Vehicle's position in its lifecycle state machine.
type State int

const (
	// NotArrived is the initial state before earliest_arrival_time is reached.
	NotArrived State = iota
	// Ready means the vehicle's next vertex is executable this tick but has
	// not yet been chosen by the driver.
	Ready
	// Blocked means the vehicle has arrived/finished a CZ but its next
	// vertex is not yet executable.
	Blocked
	// Moving means the vehicle is currently executing (traversing) a CZ.
	Moving
	// Left means the vehicle has departed (reached the "$" sentinel).
	Left
)

// String renders State for logs and debug output.
func (s State) String() string {
	switch s {
	case NotArrived:
		return "NOT_ARRIVED"
	case Ready:
		return "READY"
	case Blocked:
		return "BLOCKED"
	case Moving:
		return "MOVING"
	case Left:
		return "LEFT"
	default:
		return "UNKNOWN"
	}
}

// EnteredSentinel and DepartedSentinel are the "^" / "$" markers CurCZ
// returns when a vehicle has not yet entered its trajectory, or has fully
// departed it, per spec.md §3/§9(c).
const (
	EnteredSentinel = "^"
	DepartedSentinel = "$"
)

// Vehicle is a single actor crossing the intersection.
//
// ID, EarliestArrivalTime, Trajectory, SrcLaneID, DstLaneID and
// PassingTime are immutable for the lifetime of a Vehicle. PositionIndex
// and State are mutated exclusively by Simulator/TCG during a run and
// reset by Reset (called from Simulator.restart).
type Vehicle struct {
	ID                  string
	EarliestArrivalTime int64
	Trajectory          []string
	SrcLaneID           string
	DstLaneID           string
	PassingTime         int64

	PositionIndex int // -1 .. len(Trajectory); see CurCZ
	State         State
}

// New validates and constructs a Vehicle in its initial (pre-run) state:
// PositionIndex == -1, State == NotArrived.
func New(id string, earliestArrivalTime int64, trajectory []string, srcLaneID, dstLaneID string, passingTime int64) (*Vehicle, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if len(trajectory) == 0 {
		return nil, ErrEmptyTrajectory
	}
	if earliestArrivalTime < 0 {
		return nil, ErrNegativeArrival
	}
	if passingTime <= 0 {
		return nil, ErrNonPositivePassingTime
	}

	traj := make([]string, len(trajectory))
	copy(traj, trajectory)

	return &Vehicle{
		ID:                   id,
		EarliestArrivalTime:  earliestArrivalTime,
		Trajectory:           traj,
		SrcLaneID:            srcLaneID,
		DstLaneID:            dstLaneID,
		PassingTime:          passingTime,
		PositionIndex:        -1,
		State:                NotArrived,
	}, nil
}
