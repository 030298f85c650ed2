package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaienlin/tcgsim/intersection"
	"github.com/kaienlin/tcgsim/simulator"
	"github.com/kaienlin/tcgsim/vehicle"
)

func straightIntersection(t *testing.T) *intersection.Intersection {
	t.Helper()
	it, err := intersection.New(
		intersection.WithCZ("A", "B"),
		intersection.WithSourceLane("src", "A"),
		intersection.WithDestinationLane("dst", "B"),
		intersection.WithAdjacency("A", "B", 1),
	)
	require.NoError(t, err)
	return it
}

func TestAddVehicle_RejectsWhileRunning(t *testing.T) {
	it := straightIntersection(t)
	s := simulator.New(it)
	require.NoError(t, s.AddVehicle("V1", 0, []string{"A", "B"}, "src", "dst", 10))
	s.Start()

	err := s.AddVehicle("V2", 0, []string{"A", "B"}, "src", "dst", 10)
	var invalidState *simulator.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
}

func TestAddVehicle_RejectsUnknownTrajectory(t *testing.T) {
	it := straightIntersection(t)
	s := simulator.New(it)

	err := s.AddVehicle("V1", 0, []string{"B", "A"}, "src", "dst", 10)
	var cfgErr *simulator.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestAddVehicle_RejectsDuplicateID(t *testing.T) {
	it := straightIntersection(t)
	s := simulator.New(it)
	require.NoError(t, s.AddVehicle("V1", 0, []string{"A", "B"}, "src", "dst", 10))

	err := s.AddVehicle("V1", 1, []string{"A", "B"}, "src", "dst", 10)
	var cfgErr *simulator.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestRemoveVehicle_PreStartOnly(t *testing.T) {
	it := straightIntersection(t)
	s := simulator.New(it)
	require.NoError(t, s.AddVehicle("V1", 0, []string{"A", "B"}, "src", "dst", 10))
	require.NoError(t, s.RemoveVehicle("V1"))
	require.Empty(t, s.Vehicles())

	require.NoError(t, s.AddVehicle("V1", 0, []string{"A", "B"}, "src", "dst", 10))
	s.Start()
	err := s.RemoveVehicle("V1")
	var invalidState *simulator.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
}

func TestStep_ErrorsBeforeStart(t *testing.T) {
	it := straightIntersection(t)
	s := simulator.New(it)
	require.NoError(t, s.AddVehicle("V1", 0, []string{"A", "B"}, "src", "dst", 10))

	err := s.Step("V1")
	var invalidState *simulator.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
}

func TestRestart_BeforeStartErrors(t *testing.T) {
	it := straightIntersection(t)
	s := simulator.New(it)
	err := s.Restart()
	var invalidState *simulator.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
}

// driveToCompletion always advances the sole vehicle named id whenever it
// is the executable choice; it is a harmless no-op on ticks where id is
// not ready. Returns after the simulator leaves Running.
func driveToCompletion(t *testing.T, s *simulator.Simulator, id string) {
	t.Helper()
	for i := 0; i < 10_000 && s.Status() == simulator.Running; i++ {
		require.NoError(t, s.Step(id))
	}
	require.NotEqual(t, simulator.Running, s.Status(), "did not terminate within bound")
}

func TestSinglePassthrough_ZeroDelay(t *testing.T) {
	it := straightIntersection(t)
	s := simulator.New(it)
	require.NoError(t, s.AddVehicle("V1", 0, []string{"A", "B"}, "src", "dst", 10))
	s.Start()

	driveToCompletion(t, s, "V1")

	require.Equal(t, simulator.Terminated, s.Status())
	require.Equal(t, int64(21), s.Timestamp())
	require.Equal(t, int64(0), s.GetTotalDelayedTime())

	v, ok := s.Vehicle("V1")
	require.True(t, ok)
	require.Equal(t, vehicle.Left, v.State)
}
