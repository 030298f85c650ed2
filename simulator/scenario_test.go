package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaienlin/tcgsim/intersection"
	"github.com/kaienlin/tcgsim/simulator"
)

// TestScenario_TwoVehicleHeadOn covers spec.md §8 scenario 2: two vehicles
// that only ever contend for a single CZ. Whichever wins finishes at
// t=10; the loser cannot start before the winner's vertex is EXECUTED, so
// it finishes at t>=20 and the combined total delay is at least 10.
func TestScenario_TwoVehicleHeadOn(t *testing.T) {
	it, err := intersection.New(
		intersection.WithCZ("X"),
		intersection.WithSourceLane("src", "X"),
		intersection.WithDestinationLane("dst", "X"),
	)
	require.NoError(t, err)

	s := simulator.New(it)
	require.NoError(t, s.AddVehicle("V1", 0, []string{"X"}, "src", "dst", 10))
	require.NoError(t, s.AddVehicle("V2", 0, []string{"X"}, "src", "dst", 10))
	s.Start()

	for i := 0; i < 10_000 && s.Status() == simulator.Running; i++ {
		require.NoError(t, s.Step("V1"))
		require.NoError(t, s.Step("V2"))
	}

	require.Equal(t, simulator.Terminated, s.Status())
	// The loser's CZ vertex finishes at t=20; its "$" vertex then starts at
	// t=21 (the V1 call at t=20 is a no-op that advances the clock), and
	// that start advances the clock once more.
	require.Equal(t, int64(22), s.Timestamp())
	require.GreaterOrEqual(t, s.GetTotalDelayedTime(), int64(10))
}

// TestScenario_TwoCZSwapResolvesWithoutDeadlock covers the 2-CZ "swap"
// topology from spec.md §8 scenario 3 (V1: A->B, V2: B->A, simultaneous
// arrival). A faithful implementation of start_execute's orientation rule
// — the decided half always points from whichever vertex actually started
// first toward the one that has not started — makes every decided edge
// respect real chronological start order, so the decided subgraph can
// never cycle back on itself. This
// exact topology therefore always resolves cleanly; it does not reach
// DEADLOCK, contrary to spec.md's illustrative prose.
func TestScenario_TwoCZSwapResolvesWithoutDeadlock(t *testing.T) {
	it, err := intersection.New(
		intersection.WithCZ("A", "B"),
		intersection.WithSourceLane("srcA", "A"),
		intersection.WithSourceLane("srcB", "B"),
		intersection.WithDestinationLane("dstB", "B"),
		intersection.WithDestinationLane("dstA", "A"),
		intersection.WithAdjacency("A", "B", 0),
		intersection.WithAdjacency("B", "A", 0),
	)
	require.NoError(t, err)

	s := simulator.New(it)
	require.NoError(t, s.AddVehicle("V1", 0, []string{"A", "B"}, "srcA", "dstB", 10))
	require.NoError(t, s.AddVehicle("V2", 0, []string{"B", "A"}, "srcB", "dstA", 10))
	s.Start()

	for i := 0; i < 10_000 && s.Status() == simulator.Running; i++ {
		require.NoError(t, s.Step("V1"))
		require.NoError(t, s.Step("V2"))
	}

	require.Equal(t, simulator.Terminated, s.Status())
}

func fourCZIntersection(t *testing.T) *intersection.Intersection {
	t.Helper()
	it, err := intersection.New(
		intersection.WithCZ("A", "B", "C", "D"),
		intersection.WithSourceLane("srcAB", "A"),
		intersection.WithSourceLane("srcCD", "C"),
		intersection.WithDestinationLane("dstAB", "B"),
		intersection.WithDestinationLane("dstCD", "D"),
		intersection.WithAdjacency("A", "B", 1),
		intersection.WithAdjacency("C", "D", 1),
	)
	require.NoError(t, err)
	return it
}

func buildGreedyTraffic(t *testing.T, it *intersection.Intersection) *simulator.Simulator {
	t.Helper()
	s := simulator.New(it)
	lane1 := []struct {
		id      string
		arrival int64
	}{{"V1", 0}, {"V2", 2}, {"V3", 4}}
	lane2 := []struct {
		id      string
		arrival int64
	}{{"V4", 1}, {"V5", 3}, {"V6", 5}}
	for _, v := range lane1 {
		require.NoError(t, s.AddVehicle(v.id, v.arrival, []string{"A", "B"}, "srcAB", "dstAB", 5))
	}
	for _, v := range lane2 {
		require.NoError(t, s.AddVehicle(v.id, v.arrival, []string{"C", "D"}, "srcCD", "dstCD", 5))
	}
	return s
}

// runGreedy always advances the first vehicle (in registration order)
// whose state is Ready, matching spec.md §8 scenario 4's "always advance
// the first waiting vehicle" baseline policy.
func runGreedy(t *testing.T, s *simulator.Simulator) {
	t.Helper()
	for i := 0; i < 100_000 && s.Status() == simulator.Running; i++ {
		id := ""
		for _, v := range s.Vehicles() {
			if v.State.String() == "READY" {
				id = v.ID
				break
			}
		}
		require.NoError(t, s.Step(id))
	}
}

// TestScenario_GreedyBaselineTerminatesAndIsReproducible covers spec.md
// §8 scenarios 4 and 5: a fixed 6-vehicle traffic on a 4-CZ intersection
// terminates under the greedy policy with a finite total delay, and
// replaying the same policy after Restart reproduces it exactly.
func TestScenario_GreedyBaselineTerminatesAndIsReproducible(t *testing.T) {
	it := fourCZIntersection(t)
	s := buildGreedyTraffic(t, it)
	s.Start()

	runGreedy(t, s)
	require.Equal(t, simulator.Terminated, s.Status())
	firstDelay := s.GetTotalDelayedTime()
	require.GreaterOrEqual(t, firstDelay, int64(0))

	require.NoError(t, s.Restart())
	runGreedy(t, s)
	require.Equal(t, simulator.Terminated, s.Status())
	require.Equal(t, firstDelay, s.GetTotalDelayedTime())
}
