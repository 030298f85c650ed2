package traffic_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaienlin/tcgsim/traffic"
)

func TestNew_FileGenerator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"V1","trajectory":["A","B"],"src_lane_id":"src","dst_lane_id":"dst","vertex_passing_time":10}]`), 0o644))

	gen, err := traffic.New("file", map[string]string{"path": path})
	require.NoError(t, err)

	specs, err := gen.Generate(0)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	require.Equal(t, "V1", specs[0].ID)
}

func TestNew_UnknownGenerator(t *testing.T) {
	_, err := traffic.New("poisson", nil)
	require.ErrorIs(t, err, traffic.ErrUnknownGenerator)
}

func TestNew_FileGenerator_MissingPath(t *testing.T) {
	_, err := traffic.New("file", nil)
	require.ErrorIs(t, err, traffic.ErrMissingKwarg)
}
