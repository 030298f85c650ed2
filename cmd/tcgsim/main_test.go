package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_FlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	alpha, err := cmd.Flags().GetFloat64("alpha")
	require.NoError(t, err)
	require.Equal(t, 0.1, alpha)

	gamma, err := cmd.Flags().GetFloat64("gamma")
	require.NoError(t, err)
	require.Equal(t, 0.9, gamma)

	generator, err := cmd.Flags().GetString("traffic-generator")
	require.NoError(t, err)
	require.Equal(t, "file", generator)
}

func TestNewRootCmd_RequiresIntersectionFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--traffic", "x.json"})
	err := cmd.Execute()
	require.Error(t, err)
}
