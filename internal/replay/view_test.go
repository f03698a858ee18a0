package replay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewReplayEmitsEveryFrame(t *testing.T) {
	recorded := snaps(nil, []string{"rhombus"}, []string{"rhombus", "triangle"})
	var frames []Frame
	view := NewView(NewIterator(recorded), SinkFunc(func(f Frame) error {
		frames = append(frames, f)
		return nil
	}), "")

	n, err := view.Replay()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Len(t, frames, 3)
	for i, f := range frames {
		require.Equal(t, i, f.Seq)
		require.Equal(t, recorded[i].Contents(), f.Shapes)
		require.Equal(t, recorded[i].ID().String(), f.SnapshotID)
	}
	require.Equal(t, "The shapes are now: ", frames[0].Line())
	require.Equal(t, "The shapes are now: rhombus, triangle", frames[2].Line())
	require.Equal(t, []string{"rhombus", "triangle"}, view.Shapes())

	n, err = view.Replay()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestViewReplayStopsOnSinkError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	view := NewView(NewIterator(snaps([]string{"a"}, []string{"b"})), SinkFunc(func(f Frame) error {
		calls++
		return boom
	}), "State: ")

	n, err := view.Replay()
	require.ErrorIs(t, err, boom)
	require.Zero(t, n)
	require.Equal(t, 1, calls)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{"disabled", "rhombus, triangle", 0, "rhombus, triangle"},
		{"fits", "circle", 6, "circle"},
		{"cut", "rhombus, triangle", 8, "rhombus…"},
		{"wide runes", "日本語", 5, "日本…"},
		{"tiny", "abc", 1, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Truncate(tt.line, tt.width))
		})
	}
}
