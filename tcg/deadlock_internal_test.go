package tcg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaienlin/tcgsim/vehicle"
)

// TestCheckDeadlock_DetectsManufacturedCycle exercises the DFS directly
// against a hand-built decided-edge cycle. Such a cycle cannot arise from
// any legal sequence of StartExecute calls against a Graph built by Build
// (every decided edge points from a vertex that started earlier to one
// that has not started), but CheckDeadlock must still recognize one if the
// invariant is ever violated — this is a white-box test of the primitive
// itself, not of reachability.
func TestCheckDeadlock_DetectsManufacturedCycle(t *testing.T) {
	veh, err := vehicle.New("V1", 0, []string{"A"}, "src", "dst", 10)
	require.NoError(t, err)

	g := &Graph{index: make(map[vehicleCZKey]VertexID)}
	a := g.newVertex(veh, "A", 10)
	b := g.newVertex(veh, "B", 10)
	c := g.newVertex(veh, "C", 10)

	g.newEdge(Type2, a, b, true, 0)
	g.newEdge(Type2, b, c, true, 0)
	g.newEdge(Type2, c, a, true, 0)

	require.True(t, g.CheckDeadlock())
}

func TestCheckDeadlock_UndecidedEdgesIgnored(t *testing.T) {
	veh, err := vehicle.New("V1", 0, []string{"A"}, "src", "dst", 10)
	require.NoError(t, err)

	g := &Graph{index: make(map[vehicleCZKey]VertexID)}
	a := g.newVertex(veh, "A", 10)
	b := g.newVertex(veh, "B", 10)

	e1 := g.newEdge(Type3, a, b, false, 0)
	e2 := g.newEdge(Type3, b, a, false, 0)
	g.edges[e1].Mirror = e2
	g.edges[e2].Mirror = e1

	require.False(t, g.CheckDeadlock())
}
