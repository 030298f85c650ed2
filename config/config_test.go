package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaienlin/tcgsim/config"
	"github.com/kaienlin/tcgsim/simulator"
)

const intersectionJSON = `{
  "cz_ids": ["A", "B"],
  "source_lanes": {"src": ["A"]},
  "destination_lanes": {"dst": ["B"]},
  "adjacency": [{"from": "A", "to": "B", "transit_time": 1}]
}`

const trafficJSON = `[
  {"id": "V1", "earliest_arrival_time": 0, "trajectory": ["A", "B"], "src_lane_id": "src", "dst_lane_id": "dst", "vertex_passing_time": 10}
]`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIntersection_RoundTrips(t *testing.T) {
	path := writeTemp(t, "intersection.json", intersectionJSON)
	it, err := config.LoadIntersection(path)
	require.NoError(t, err)
	require.True(t, it.HasCZ("A"))
	require.True(t, it.Adjacent("A", "B"))
	tt, ok := it.TransitTime("A", "B")
	require.True(t, ok)
	require.Equal(t, int64(1), tt)
}

func TestLoadIntersection_RejectsUnknownCZ(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"cz_ids": ["A"], "adjacency": [{"from": "A", "to": "B", "transit_time": 1}]}`)
	_, err := config.LoadIntersection(path)
	require.Error(t, err)
}

func TestLoadTraffic_AndApply(t *testing.T) {
	itPath := writeTemp(t, "intersection.json", intersectionJSON)
	it, err := config.LoadIntersection(itPath)
	require.NoError(t, err)

	trafficPath := writeTemp(t, "traffic.json", trafficJSON)
	specs, err := config.LoadTraffic(trafficPath)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	s := simulator.New(it)
	require.NoError(t, config.ApplyTraffic(s, specs))
	require.Len(t, s.Vehicles(), 1)
}

func TestApplyTraffic_ConfigurationErrorStopsEarly(t *testing.T) {
	itPath := writeTemp(t, "intersection.json", intersectionJSON)
	it, err := config.LoadIntersection(itPath)
	require.NoError(t, err)

	specs := []config.VehicleSpec{
		{ID: "V1", Trajectory: []string{"B", "A"}, SrcLaneID: "src", DstLaneID: "dst", VertexPassingTime: 10},
	}
	s := simulator.New(it)
	err = config.ApplyTraffic(s, specs)
	require.Error(t, err)
}
