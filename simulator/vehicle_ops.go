package simulator

import "github.com/kaienlin/tcgsim/vehicle"

// AddVehicle validates and registers a vehicle. Legal only in the
// Initialized state; returns *InvalidStateError otherwise and
// *ConfigurationError for any validation failure, leaving the Simulator
// untouched either way.
func (s *Simulator) AddVehicle(id string, earliestArrivalTime int64, trajectory []string, srcLaneID, dstLaneID string, passingTime int64) error {
	if s.status != Initialized {
		return &InvalidStateError{Op: "AddVehicle", Current: s.status}
	}
	if _, exists := s.vehicles[id]; exists {
		return &ConfigurationError{Field: "id", Reason: "id already in use"}
	}
	if err := s.intersection.ValidateTrajectory(trajectory, srcLaneID, dstLaneID); err != nil {
		return &ConfigurationError{Field: "trajectory", Reason: err.Error()}
	}

	v, err := vehicle.New(id, earliestArrivalTime, trajectory, srcLaneID, dstLaneID, passingTime)
	if err != nil {
		return &ConfigurationError{Field: "vehicle", Reason: err.Error()}
	}

	s.vehicles[id] = v
	s.vehicleOrder = append(s.vehicleOrder, id)
	return nil
}

// RemoveVehicle deregisters a vehicle. Legal only in the Initialized
// state, matching spec.md §3's "vertices are removed only on
// remove_vehicle (pre-start)".
func (s *Simulator) RemoveVehicle(id string) error {
	if s.status != Initialized {
		return &InvalidStateError{Op: "RemoveVehicle", Current: s.status}
	}
	if _, exists := s.vehicles[id]; !exists {
		return &ConfigurationError{Field: "id", Reason: "unknown vehicle id"}
	}

	delete(s.vehicles, id)
	for i, vid := range s.vehicleOrder {
		if vid == id {
			s.vehicleOrder = append(s.vehicleOrder[:i], s.vehicleOrder[i+1:]...)
			break
		}
	}
	return nil
}
