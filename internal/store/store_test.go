package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/easel/internal/snapshot"
)

func TestSaveLoadKeepsOrderAndIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")
	saved := []snapshot.Snapshot{
		snapshot.Empty(),
		snapshot.New([]string{"rhombus"}),
		snapshot.New([]string{"rhombus", "triangle"}),
	}
	require.NoError(t, Save(path, saved))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(saved))
	for i := range saved {
		require.Equal(t, saved[i].ID(), loaded[i].ID())
		require.True(t, saved[i].Equal(loaded[i]))
		require.True(t, saved[i].Taken().Equal(loaded[i].Taken()))
	}

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestLoadMissingFile(t *testing.T) {
	snaps, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	require.Nil(t, snaps)
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"wrong version", `{"version":9,"snapshots":[]}`},
		{"bad id", `{"version":1,"snapshots":[{"id":"nope","taken":"2024-01-01T00:00:00Z","shapes":[]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			require.Error(t, err)
		})
	}

	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":2}`), 0o644))
	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}
