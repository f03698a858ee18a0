package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/easel/internal/replay"
	"github.com/bethropolis/easel/internal/snapshot"
	"github.com/bethropolis/easel/internal/theme"
)

func newSimTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	ui, err := NewWithScreen(sim)
	require.NoError(t, err)
	sim.SetSize(width, height)
	t.Cleanup(ui.Close)
	return ui, sim
}

func row(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r := cells[y*width+x].Runes
		if len(r) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(string(r))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestSinkPaintsFrames(t *testing.T) {
	ui, sim := newSimTUI(t, 40, 3)
	s := NewSink(ui, nil)

	require.NoError(t, s.Emit(replay.NewFrame(0, "Now: ", snapshot.New([]string{"rhombus", "circle"}))))
	require.NoError(t, s.Emit(replay.Frame{Label: "Nothing to undo"}))

	require.Equal(t, "Now: rhombus, circle", row(sim, 0))
	require.Equal(t, "Nothing to undo", row(sim, 1))
	require.Equal(t, "", row(sim, 2))
}

func TestSinkScrollsAndClips(t *testing.T) {
	ui, sim := newSimTUI(t, 8, 2)
	s := NewSink(ui, nil)

	for _, shape := range []string{"a", "b", "c"} {
		require.NoError(t, s.Emit(replay.NewFrame(0, "S: ", snapshot.New([]string{shape, "hexagon"}))))
	}

	require.Equal(t, "S: b, he", row(sim, 0))
	require.Equal(t, "S: c, he", row(sim, 1))
	require.Len(t, s.lines, 2)
}

func TestSinkReservesStatusRow(t *testing.T) {
	ui, sim := newSimTUI(t, 30, 2)
	s := NewSink(ui, nil)
	s.SetStatusSource(func(width int) string { return "[recording] -- Shapes: 1" }, nil)

	require.NoError(t, s.Emit(replay.NewFrame(0, "S: ", snapshot.New([]string{"a"}))))
	require.NoError(t, s.Emit(replay.NewFrame(1, "S: ", snapshot.New([]string{"b"}))))

	require.Equal(t, "S: b", row(sim, 0))
	require.Equal(t, "[recording] -- Shapes: 1", row(sim, 1))
}

func cellStyle(sim tcell.SimulationScreen, x, y int) tcell.Style {
	cells, width, _ := sim.GetContents()
	return cells[y*width+x].Style
}

func TestSinkUsesThemeStyles(t *testing.T) {
	ui, sim := newSimTUI(t, 30, 3)
	s := NewSink(ui, &theme.EaselLight)
	unsaved := true
	s.SetStatusSource(func(int) string { return "status" }, func() bool { return unsaved })

	require.NoError(t, s.Emit(replay.NewFrame(0, "S: ", snapshot.New([]string{"a"}))))
	require.NoError(t, s.Emit(replay.Frame{Label: "Saved"}))

	light := theme.EaselLight
	require.Equal(t, light.GetStyle(theme.StyleLabel), cellStyle(sim, 0, 0))
	require.Equal(t, light.GetStyle(theme.StyleShape), cellStyle(sim, 3, 0))
	require.Equal(t, light.GetStyle(theme.StyleMessage), cellStyle(sim, 0, 1))
	require.Equal(t, light.GetStyle(theme.StyleStatusBarUnsaved), cellStyle(sim, 0, 2))

	unsaved = false
	s.SetTheme(&theme.EaselDark)
	require.Equal(t, theme.EaselDark.GetStyle(theme.StyleStatusBar), cellStyle(sim, 0, 2))
	require.Equal(t, theme.EaselDark.GetStyle(theme.StyleLabel), cellStyle(sim, 0, 0))
}
