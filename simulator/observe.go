package simulator

import "github.com/kaienlin/tcgsim/vehicle"

// Observation is a read-only snapshot of the run: every vehicle's current
// state plus the simulated clock. It is the shape the environment adapter
// and the live-feed broadcaster both consume.
type Observation struct {
	Vehicles  []*vehicle.Vehicle
	Timestamp int64
}

// Observe returns the current snapshot.
func (s *Simulator) Observe() Observation {
	return Observation{
		Vehicles:  s.Vehicles(),
		Timestamp: s.timestamp,
	}
}
