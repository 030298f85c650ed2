package qlearning

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DenseTable backs a Q-table with a gonum mat.Dense matrix, one row per
// state id and one column per action id. Used when StateSpaceSize is
// known and small enough to allocate up front (the original reserves
// init_state_num=1<<20 rows eagerly; DenseTable lets the caller reserve
// exactly env.Adapter.StateSpaceSize() instead).
type DenseTable struct {
	values     *mat.Dense
	numStates  int
	numActions int
}

// NewDenseTable allocates a numStates x numActions table with every cell
// initialized to +Inf (untried).
func NewDenseTable(numStates, numActions int) *DenseTable {
	raw := make([]float64, numStates*numActions)
	for i := range raw {
		raw[i] = math.Inf(1)
	}
	return &DenseTable{
		values:     mat.NewDense(numStates, numActions, raw),
		numStates:  numStates,
		numActions: numActions,
	}
}

// NumActions returns the column count.
func (t *DenseTable) NumActions() int { return t.numActions }

// Get returns the stored value for (state, action). Out-of-range states
// return +Inf, matching the untried-cell convention, rather than panicking
// — Table.Get is called from hot decision-making loops that should never
// need a bounds check of their own.
func (t *DenseTable) Get(state int64, action int) float64 {
	if state < 0 || state >= int64(t.numStates) || action < 0 || action >= t.numActions {
		return math.Inf(1)
	}
	return t.values.At(int(state), action)
}

// Set stores value for (state, action). Out-of-range calls are silently
// dropped, mirroring Get's leniency.
func (t *DenseTable) Set(state int64, action int, value float64) {
	if state < 0 || state >= int64(t.numStates) || action < 0 || action >= t.numActions {
		return
	}
	t.values.Set(int(state), action, value)
}

// Rows exports every state row whose values differ from the all-+Inf
// default, for Checkpointer.
func (t *DenseTable) Rows() map[int64][]float64 {
	out := make(map[int64][]float64)
	for s := 0; s < t.numStates; s++ {
		row := make([]float64, t.numActions)
		visited := false
		for a := 0; a < t.numActions; a++ {
			row[a] = t.values.At(s, a)
			if !math.IsInf(row[a], 1) {
				visited = true
			}
		}
		if visited {
			out[int64(s)] = row
		}
	}
	return out
}

// SetRow overwrites one state's full action row, e.g. when restoring from
// a Checkpointer snapshot.
func (t *DenseTable) SetRow(state int64, row []float64) {
	if state < 0 || state >= int64(t.numStates) {
		return
	}
	for a := 0; a < t.numActions && a < len(row); a++ {
		t.values.Set(int(state), a, row[a])
	}
}
