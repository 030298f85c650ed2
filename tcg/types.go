package tcg

import (
	"errors"

	"github.com/kaienlin/tcgsim/vehicle"
)

// Sentinel errors for TCG construction and mutation.
var (
	// ErrVertexNotFound indicates a (vehicle, cz) pair has no registered vertex.
	ErrVertexNotFound = errors.New("tcg: vertex not found")

	// ErrVertexNotReady indicates StartExecute was called on a vertex whose
	// decided predecessors are not all EXECUTED, or which is not NonExecuted.
	ErrVertexNotReady = errors.New("tcg: vertex is not ready to execute")
)

// VertexID indexes into Graph.vertices.
type VertexID int

// EdgeID indexes into Graph.edges.
type EdgeID int

// invalidEdge marks the absence of a mirror / TYPE_1 edge reference.
const invalidEdge EdgeID = -1

// VertexState is a TCG vertex's execution status.
type VertexState int

const (
	NonExecuted VertexState = iota
	Executing
	Executed
)

func (s VertexState) String() string {
	switch s {
	case NonExecuted:
		return "NON_EXECUTED"
	case Executing:
		return "EXECUTING"
	case Executed:
		return "EXECUTED"
	default:
		return "UNKNOWN"
	}
}

// EdgeType classifies a TCG edge per spec.md §3.
type EdgeType int

const (
	// Type1 is a same-vehicle sequential edge; always decided.
	Type1 EdgeType = iota
	// Type2 is a committed mutual-exclusion edge between vertices of
	// different vehicles sharing a CZ; decided.
	Type2
	// Type3 is one half of an undecided mutual-exclusion pair; not decided.
	Type3
	// Type4 is the oriented execution-order edge created from a Type3 pair.
	Type4
)

func (t EdgeType) String() string {
	switch t {
	case Type1:
		return "TYPE_1"
	case Type2:
		return "TYPE_2"
	case Type3:
		return "TYPE_3"
	case Type4:
		return "TYPE_4"
	default:
		return "UNKNOWN"
	}
}

// Vertex is one (vehicle, CZ) reservation intent, or the terminal "$veh"
// sentinel (CZID == vehicle.DepartedSentinel + vehicle id).
type Vertex struct {
	ID      VertexID
	Vehicle *vehicle.Vehicle // non-owning reference; simulator owns lifetime
	CZID    string

	State       VertexState
	PassingTime int64 // inherited from Vehicle.PassingTime; 0 for the sentinel

	// EnteringTime is set when the vertex starts executing.
	EnteringTime int64
	hasEntering  bool

	// EnteringTimeWoDelay is computed once at Simulator.restart.
	EnteringTimeWoDelay int64
	hasEnteringWoDelay  bool

	// EarliestEnteringTime is recomputed every Simulator.step.
	EarliestEnteringTime int64
	hasEarliest          bool

	InEdges  []EdgeID
	OutEdges []EdgeID
}

// EnteringTimeOK reports whether EnteringTime has been set.
func (v *Vertex) EnteringTimeOK() bool { return v.hasEntering }

// SetEnteringTime records the tick at which this vertex started executing.
func (v *Vertex) SetEnteringTime(t int64) {
	v.EnteringTime = t
	v.hasEntering = true
}

// EnteringTimeWoDelayOK reports whether EnteringTimeWoDelay has been set.
func (v *Vertex) EnteringTimeWoDelayOK() bool { return v.hasEnteringWoDelay }

// SetEnteringTimeWoDelay records the no-conflict baseline entering time.
func (v *Vertex) SetEnteringTimeWoDelay(t int64) {
	v.EnteringTimeWoDelay = t
	v.hasEnteringWoDelay = true
}

// EarliestEnteringTimeOK reports whether EarliestEnteringTime has been
// computed this step.
func (v *Vertex) EarliestEnteringTimeOK() bool { return v.hasEarliest }

// SetEarliestEnteringTime records this step's earliest feasible entering time.
func (v *Vertex) SetEarliestEnteringTime(t int64) {
	v.EarliestEnteringTime = t
	v.hasEarliest = true
}

// ClearEarliestEnteringTime marks EarliestEnteringTime as unset, as done at
// the start of every per-step recomputation pass.
func (v *Vertex) ClearEarliestEnteringTime() {
	v.hasEarliest = false
}

// Edge is one typed connection between two vertices.
type Edge struct {
	ID      EdgeID
	Type    EdgeType
	From    VertexID
	To      VertexID
	Decided bool

	// WaitingTime is the TYPE_1 transit time; meaningless (0) for conflict edges.
	WaitingTime int64

	// Mirror is the sibling half-edge of a Type3 pair (To->From), or
	// invalidEdge once one half has been promoted to Type4 (the other is
	// unlinked from both endpoints' edge lists; its record stays in the
	// arena).
	Mirror EdgeID
}
