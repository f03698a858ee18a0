package statusbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultText(t *testing.T) {
	sb := New(Config{})
	sb.SetHistoryKind("null")
	sb.SetCanvasInfo(4, 1)
	require.Equal(t, "[null] -- Shapes: 4, History: 1", sb.Text(0))

	sb.SetUnsaved(true)
	require.Equal(t, "[null] [Unsaved] -- Shapes: 4, History: 1", sb.Text(0))
	require.Equal(t, "[null] [U…", sb.Text(10))
}

func TestTemporaryMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb := New(Config{MessageTimeout: time.Second})
	sb.now = func() time.Time { return now }
	sb.SetCanvasInfo(2, 3)

	sb.SetTemporaryMessage("Saved %d snapshot(s)", 3)
	require.Equal(t, "Saved 3 snapshot(s)", sb.Text(0))
	require.Equal(t, "[recording] -- Shapes: 2, History: 3", sb.Summary())

	now = now.Add(2 * time.Second)
	require.Equal(t, "[recording] -- Shapes: 2, History: 3", sb.Text(0))

	sb.SetTemporaryMessage("again")
	sb.ResetTemporaryMessage()
	require.Equal(t, "[recording] -- Shapes: 2, History: 3", sb.Text(0))
}
