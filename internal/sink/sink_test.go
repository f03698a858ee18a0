package sink

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/easel/internal/replay"
	"github.com/bethropolis/easel/internal/snapshot"
)

func TestWriterEmitsLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, 0)
	require.NoError(t, s.Emit(replay.NewFrame(0, replay.DefaultLabel, snapshot.New([]string{"rhombus", "triangle"}))))
	require.NoError(t, s.Emit(replay.Frame{Label: "Nothing to undo"}))

	require.Equal(t, "The shapes are now: rhombus, triangle\nNothing to undo\n", buf.String())
}

func TestWriterTruncates(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, 10)
	require.NoError(t, s.Emit(replay.Frame{Label: "Shapes: ", Shapes: []string{"rhombus"}}))
	require.Equal(t, "Shapes: r…\n", buf.String())
}

func TestJSONEmitsOneObjectPerFrame(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSON(&buf)
	snap := snapshot.New([]string{"circle"})
	require.NoError(t, s.Emit(replay.NewFrame(3, "State: ", snap)))
	require.NoError(t, s.Emit(replay.Frame{Seq: 4, Label: "done"}))

	sc := bufio.NewScanner(&buf)
	var got []jsonFrame
	for sc.Scan() {
		var f jsonFrame
		require.NoError(t, json.Unmarshal(sc.Bytes(), &f))
		got = append(got, f)
	}
	require.Len(t, got, 2)
	require.Equal(t, 3, got[0].Seq)
	require.Equal(t, []string{"circle"}, got[0].Shapes)
	require.Equal(t, "State: circle", got[0].Line)
	require.Equal(t, snap.ID().String(), got[0].SnapshotID)
	require.NotNil(t, got[0].Taken)
	require.WithinDuration(t, snap.Taken(), *got[0].Taken, time.Second)

	require.Empty(t, got[1].Shapes)
	require.Nil(t, got[1].Taken)
	require.Empty(t, got[1].SnapshotID)
}

func TestClipboardAccumulatesLines(t *testing.T) {
	var copied []string
	s := &Clipboard{writeAll: func(text string) error {
		copied = append(copied, text)
		return nil
	}}

	require.NoError(t, s.Emit(replay.Frame{Label: "a: ", Shapes: []string{"x"}}))
	require.NoError(t, s.Emit(replay.Frame{Label: "b: ", Shapes: []string{"y", "z"}}))

	require.Equal(t, []string{"a: x", "a: x\nb: y, z"}, copied)
	require.Equal(t, []string{"a: x", "b: y, z"}, s.Lines())
}

func TestClipboardWriteError(t *testing.T) {
	boom := errors.New("no display")
	s := &Clipboard{writeAll: func(string) error { return boom }}
	require.ErrorIs(t, s.Emit(replay.Frame{Label: "x"}), boom)
}
