package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kaienlin/tcgsim/intersection"
)

// AdjacencySpec is one directed CZ-to-CZ transit time entry.
type AdjacencySpec struct {
	From        string `json:"from"`
	To          string `json:"to"`
	TransitTime int64  `json:"transit_time"`
}

// IntersectionSpec is the on-disk shape of an intersection description:
// conflict zone ids, source/destination lane layouts, and the adjacency
// (transit-time) table, matching spec.md §6's "structured document (e.g.
// JSON) describing CZ ids, lane structures, CZ adjacency, and TYPE_1
// waiting times".
type IntersectionSpec struct {
	CZIDs            []string            `json:"cz_ids"`
	SourceLanes      map[string][]string `json:"source_lanes"`
	DestinationLanes map[string][]string `json:"destination_lanes"`
	Adjacency        []AdjacencySpec     `json:"adjacency"`
}

// LoadIntersection reads path as JSON and builds an *intersection.Intersection.
// Any structural violation (unknown CZ reference, negative transit time)
// surfaces as the same sentinel errors intersection.New itself returns;
// an adjacency entry with an empty endpoint returns
// ErrEmptyAdjacencyEndpoint. A lane with an empty id is dropped, not
// rejected.
func LoadIntersection(path string) (*intersection.Intersection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read intersection file: %w", err)
	}

	var spec IntersectionSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("config: parse intersection file: %w", err)
	}

	return BuildIntersection(spec)
}

// BuildIntersection converts an already-parsed IntersectionSpec into an
// *intersection.Intersection, applying the same Option constructors a
// hand-written caller would use.
func BuildIntersection(spec IntersectionSpec) (*intersection.Intersection, error) {
	opts := make([]intersection.Option, 0, 1+len(spec.SourceLanes)+len(spec.DestinationLanes)+len(spec.Adjacency))
	opts = append(opts, intersection.WithCZ(spec.CZIDs...))

	for lane, seq := range spec.SourceLanes {
		opts = append(opts, intersection.WithSourceLane(lane, seq...))
	}
	for lane, czs := range spec.DestinationLanes {
		opts = append(opts, intersection.WithDestinationLane(lane, czs...))
	}
	for _, adj := range spec.Adjacency {
		if adj.From == "" || adj.To == "" {
			return nil, ErrEmptyAdjacencyEndpoint
		}
		opts = append(opts, intersection.WithAdjacency(adj.From, adj.To, adj.TransitTime))
	}

	return intersection.New(opts...)
}
