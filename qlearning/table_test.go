package qlearning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaienlin/tcgsim/qlearning"
)

func TestDenseTable_DefaultsToInf(t *testing.T) {
	tbl := qlearning.NewDenseTable(3, 2)
	require.True(t, math.IsInf(tbl.Get(0, 0), 1))

	tbl.Set(1, 1, 4.5)
	require.Equal(t, 4.5, tbl.Get(1, 1))
	require.True(t, math.IsInf(tbl.Get(1, 0), 1))
}

func TestDenseTable_OutOfRangeIsInf(t *testing.T) {
	tbl := qlearning.NewDenseTable(2, 2)
	require.True(t, math.IsInf(tbl.Get(99, 0), 1))
	tbl.Set(99, 0, 1.0) // must not panic
}

func TestMapTable_GrowsLazily(t *testing.T) {
	tbl := qlearning.NewMapTable(3)
	require.True(t, math.IsInf(tbl.Get(42, 0), 1))

	tbl.Set(42, 2, 7.0)
	require.Equal(t, 7.0, tbl.Get(42, 2))
	require.True(t, math.IsInf(tbl.Get(42, 0), 1))
}

func TestRows_RoundTripsThroughCheckpoint(t *testing.T) {
	dense := qlearning.NewDenseTable(4, 2)
	dense.Set(0, 0, 1.0)
	dense.Set(2, 1, -3.5)

	path := t.TempDir() + "/qtable.json"
	ckpt := qlearning.JSONCheckpointer{}
	require.NoError(t, ckpt.Save(path, dense))

	restored := qlearning.NewDenseTable(4, 2)
	require.NoError(t, ckpt.Load(path, restored))
	require.Equal(t, 1.0, restored.Get(0, 0))
	require.Equal(t, -3.5, restored.Get(2, 1))
	require.True(t, math.IsInf(restored.Get(1, 0), 1))
}

func TestMapTable_RowsOnlyIncludesVisited(t *testing.T) {
	tbl := qlearning.NewMapTable(2)
	tbl.Set(5, 0, 1.0)
	rows := tbl.Rows()
	require.Len(t, rows, 1)
	require.Contains(t, rows, int64(5))
}
