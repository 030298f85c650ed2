package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kaienlin/tcgsim/simulator"
)

// VehicleSpec is the on-disk shape of one vehicle record, per spec.md §6:
// "{id, earliest_arrival_time, trajectory[], src_lane_id, dst_lane_id,
// vertex_passing_time}".
type VehicleSpec struct {
	ID                  string   `json:"id"`
	EarliestArrivalTime int64    `json:"earliest_arrival_time"`
	Trajectory          []string `json:"trajectory"`
	SrcLaneID           string   `json:"src_lane_id"`
	DstLaneID           string   `json:"dst_lane_id"`
	VertexPassingTime   int64    `json:"vertex_passing_time"`
}

// LoadTraffic reads path as a JSON array of VehicleSpec.
func LoadTraffic(path string) ([]VehicleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read traffic file: %w", err)
	}

	var specs []VehicleSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("config: parse traffic file: %w", err)
	}

	return specs, nil
}

// ApplyTraffic feeds every VehicleSpec into sim.AddVehicle, in file order,
// stopping at the first *simulator.ConfigurationError (or
// *simulator.InvalidStateError, if sim is not Initialized).
func ApplyTraffic(sim *simulator.Simulator, specs []VehicleSpec) error {
	for _, v := range specs {
		if err := sim.AddVehicle(v.ID, v.EarliestArrivalTime, v.Trajectory, v.SrcLaneID, v.DstLaneID, v.VertexPassingTime); err != nil {
			return fmt.Errorf("config: add vehicle %q: %w", v.ID, err)
		}
	}
	return nil
}
