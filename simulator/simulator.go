package simulator

import (
	"github.com/kaienlin/tcgsim/intersection"
	"github.com/kaienlin/tcgsim/tcg"
	"github.com/kaienlin/tcgsim/vehicle"
)

// Simulator drives a tcg.Graph, built from a fixed Intersection and a
// caller-supplied vehicle set, through simulated time one tick at a time.
//
// A Simulator is not safe for concurrent use; callers that parallelise
// across episodes must give each worker its own Simulator (and hence its
// own Intersection reference is fine to share — Intersection is
// immutable — but vehicles and the TCG are not).
type Simulator struct {
	intersection *intersection.Intersection

	// disturbanceProb is stored but never consulted by step: spec.md §1
	// explicitly keeps probabilistic dynamics out of the core stepping
	// function. Nothing in this package reads it back or exposes it through
	// an accessor.
	disturbanceProb *float64

	vehicles     map[string]*vehicle.Vehicle
	vehicleOrder []string // insertion order, for deterministic iteration

	status    Status
	timestamp int64
	graph     *tcg.Graph

	// nonExecuted and executing mirror the original's vertex-state sets,
	// kept as insertion-ordered slices (never maps) so iteration order is
	// reproducible per spec.md §5's byte-exact replay guarantee.
	nonExecuted []tcg.VertexID
	executing   []tcg.VertexID
}

// Option configures a Simulator at construction.
type Option func(*Simulator)

// WithDisturbanceProb records an optional disturbance probability for
// external traffic-generator use; the core stepping logic never reads it.
func WithDisturbanceProb(p float64) Option {
	return func(s *Simulator) {
		s.disturbanceProb = &p
	}
}

// New constructs a Simulator in the Initialized state for the given
// (already-validated) Intersection. Call AddVehicle zero or more times,
// then Start.
func New(it *intersection.Intersection, opts ...Option) *Simulator {
	s := &Simulator{
		intersection: it,
		vehicles:     make(map[string]*vehicle.Vehicle),
		status:       Initialized,
		timestamp:    -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Intersection returns the static intersection description.
func (s *Simulator) Intersection() *intersection.Intersection { return s.intersection }

// Status returns the current run-level status.
func (s *Simulator) Status() Status { return s.status }

// Timestamp returns the current simulated tick. It is -1 before the first
// call to Start/restart's internal step(None).
func (s *Simulator) Timestamp() int64 { return s.timestamp }

// Graph returns the live Timing Conflict Graph. It is nil before Start.
func (s *Simulator) Graph() *tcg.Graph { return s.graph }

// Vehicles returns all registered vehicles in insertion order. The
// returned slice is freshly allocated; the *vehicle.Vehicle values
// themselves are shared and mutated in place by step.
func (s *Simulator) Vehicles() []*vehicle.Vehicle {
	out := make([]*vehicle.Vehicle, len(s.vehicleOrder))
	for i, id := range s.vehicleOrder {
		out[i] = s.vehicles[id]
	}
	return out
}

// Vehicle looks up a registered vehicle by id.
func (s *Simulator) Vehicle(id string) (*vehicle.Vehicle, bool) {
	v, ok := s.vehicles[id]
	return v, ok
}
