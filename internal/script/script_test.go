package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls  []string
	undos  int
	undoOK int // undos that report a change
}

func (r *recorder) AddShape(label string) { r.calls = append(r.calls, "add "+label) }
func (r *recorder) ClearAll()             { r.calls = append(r.calls, "clear") }

func (r *recorder) Undo() (bool, error) {
	r.undos++
	r.calls = append(r.calls, "undo")
	return r.undos <= r.undoOK, nil
}

func (r *recorder) Show(label string) error {
	r.calls = append(r.calls, "show "+label)
	return nil
}

func (r *recorder) Replay() (int, error) {
	r.calls = append(r.calls, "replay")
	return 0, nil
}

func (r *recorder) ExecuteCommand(name string, args []string) error {
	r.calls = append(r.calls, fmt.Sprintf("cmd %s %s", name, strings.Join(args, ",")))
	return nil
}

const demo = `
name: demo
steps:
  - add: rhombus
  - add: [triangle, square]
  - show: "Now: "
  - show: ""
  - undo: 5
  - clear: true
  - replay: true
  - command: count
    args: [circle]
`

func TestParseAndRun(t *testing.T) {
	s, err := Parse([]byte(demo))
	require.NoError(t, err)
	require.Equal(t, "demo", s.Name)
	require.Len(t, s.Steps, 8)

	r := &recorder{undoOK: 2}
	require.NoError(t, Run(context.Background(), r, s))
	require.Equal(t, []string{
		"add rhombus", "add triangle", "add square",
		"show Now: ", "show ",
		"undo", "undo", "undo", "undo", "undo",
		"clear", "replay", "cmd count circle",
	}, r.calls)
}

func TestParseRejectsInvalidSteps(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"two actions", "steps:\n  - add: a\n    clear: true\n"},
		{"no action", "steps:\n  - {}\n"},
		{"negative undo", "steps:\n  - undo: -1\n"},
		{"args alone", "steps:\n  - add: a\n    args: [x]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			require.ErrorIs(t, err, ErrInvalidStep)
		})
	}

	_, err := Parse([]byte("steps:\n  - paint: a\n"))
	require.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, s.Steps)
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := Parse([]byte(demo))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &recorder{}
	err = Run(ctx, r, s)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, r.calls)
}

func TestLoadNamesScriptAfterPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - add: circle\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
