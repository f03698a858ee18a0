package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypeShapeAdded, func(e Event) bool {
		got = append(got, "first:"+e.Type.String())
		return false
	})
	m.Subscribe(TypeShapeAdded, func(e Event) bool {
		data, ok := e.Data.(CanvasChangedData)
		require.True(t, ok)
		got = append(got, "second:"+data.Shapes[0])
		return false
	})

	m.Dispatch(TypeShapeAdded, CanvasChangedData{Shapes: []string{"circle"}})
	m.Dispatch(TypeUndo, nil)

	require.Equal(t, []string{"first:shape-added", "second:circle"}, got)
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeUndo, func(Event) bool { calls++; return true })
	m.Subscribe(TypeUndo, func(Event) bool { calls++; return false })

	m.Dispatch(TypeUndo, nil)
	require.Equal(t, 1, calls)
}

func TestDispatchOnNilManager(t *testing.T) {
	var m *Manager
	require.NotPanics(t, func() { m.Dispatch(TypeAppReady, AppReadyData{}) })
}
