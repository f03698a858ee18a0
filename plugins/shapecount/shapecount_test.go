package shapecount

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/easel/internal/plugin/plugintest"
)

func TestCountCommand(t *testing.T) {
	api := plugintest.New()
	api.Shapes = []string{"circle", "square", "circle", "triangle"}

	p := New()
	require.NoError(t, p.Initialize(api))
	cmd, ok := api.Commands["count"]
	require.True(t, ok)

	require.NoError(t, cmd(nil))
	require.NoError(t, cmd([]string{"circle", "hexagon"}))
	require.Equal(t, []string{
		"Shapes: 4, Distinct: 3 (circle=2, square=1, triangle=1)",
		"Counts: circle=2, hexagon=0",
	}, api.Messages)
	require.NoError(t, p.Shutdown())
}

func TestCountOnEmptyCanvas(t *testing.T) {
	api := plugintest.New()
	p := New()
	require.NoError(t, p.Initialize(api))

	require.NoError(t, api.Commands["count"](nil))
	require.Equal(t, []string{"Shapes: 0, Distinct: 0 ()"}, api.Messages)
}

func TestDepthCommand(t *testing.T) {
	api := plugintest.New()
	api.Depth = 3
	require.NoError(t, New().Initialize(api))

	require.NoError(t, api.Commands["depth"](nil))
	require.Equal(t, []string{"History: 3 snapshot(s) (recording)"}, api.Messages)
}

func TestInitializeFailsOnDuplicateCommand(t *testing.T) {
	api := plugintest.New()
	require.NoError(t, api.RegisterCommand("count", func([]string) error { return nil }))
	require.Error(t, New().Initialize(api))
}
