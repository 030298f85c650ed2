package qlearning

// Table is the pluggable backing store for Q-values, addressed by
// (state id, action id) pairs. Get on an action never written by Set must
// return +Inf — the "lazy initialisation to +∞ for non-effective actions"
// Design Note — so that an untried action never wins an argmin against an
// action with any finite recorded cost.
type Table interface {
	Get(state int64, action int) float64
	Set(state int64, action int, value float64)
	NumActions() int
}

// PersistentTable is a Table that can be fully exported to, and restored
// from, a sparse (state -> per-action row) snapshot. Both DenseTable and
// MapTable implement it; Checkpointer uses only this interface.
type PersistentTable interface {
	Table
	Rows() map[int64][]float64
	SetRow(state int64, row []float64)
}
