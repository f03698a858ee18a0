package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/easel/internal/snapshot"
)

func TestNullStartsEmpty(t *testing.T) {
	n := NewNull()
	require.Empty(t, n.Current().Contents())
	require.Equal(t, 1, n.Len())
}

func TestNullResolveReturnsLatest(t *testing.T) {
	n := NewNull()
	n.Record(snapshot.New([]string{"a"}))
	last := snapshot.New([]string{"a", "b"})
	n.Record(last)

	for i := 0; i < 3; i++ {
		got, err := n.ResolvePrevious()
		require.NoError(t, err)
		require.Equal(t, last.ID(), got.ID())
	}
}

func TestNullZeroValueUsable(t *testing.T) {
	var n Null
	got, err := n.ResolvePrevious()
	require.NoError(t, err)
	require.Empty(t, got.Contents())
}
