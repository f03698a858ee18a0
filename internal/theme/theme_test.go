package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

const oceanTheme = `
name = "Ocean"
is_dark = true

[styles.Default]
fg = "#d8dee9"

[styles.Label]
fg = "teal"
bold = true

[styles.Broken]
fg = "#12"
`

func TestParseThemeInheritsDefault(t *testing.T) {
	th, err := ParseTheme([]byte(oceanTheme))
	require.NoError(t, err)
	require.Equal(t, "Ocean", th.Name)
	require.True(t, th.IsDark)

	fg, _, attrs := th.GetStyle(StyleLabel).Decompose()
	require.Equal(t, tcell.ColorTeal, fg)
	require.NotZero(t, attrs&tcell.AttrBold)

	defFg, _, _ := th.GetStyle(StyleDefault).Decompose()
	require.Equal(t, tcell.NewHexColor(0xd8dee9), defFg)

	_, ok := th.Styles["Broken"]
	require.False(t, ok)
}

func TestGetStyleFallbacks(t *testing.T) {
	th := &EaselDark
	require.Equal(t, th.Styles[StyleStatusBar], th.GetStyle("StatusBar.missing"))
	require.Equal(t, th.Styles[StyleDefault], th.GetStyle("Nope"))
	require.Equal(t, th.Styles[StyleStatusBarUnsaved], th.GetStyle(StyleStatusBarUnsaved))
}

func TestParseColorString(t *testing.T) {
	c, err := parseColorString(" #FF0000 ")
	require.NoError(t, err)
	require.Equal(t, tcell.NewHexColor(0xff0000), c)

	c, err = parseColorString("reset")
	require.NoError(t, err)
	require.Equal(t, tcell.ColorReset, c)

	_, err = parseColorString("#fff")
	require.Error(t, err)
	_, err = parseColorString("not-a-color")
	require.Error(t, err)
}

func TestManagerLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ocean.toml"), []byte(oceanTheme), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	m := NewManager(dir, "ocean")
	require.Equal(t, "Ocean", m.Current().Name)
	require.Equal(t, []string{"Easel Dark", "Easel Light", "Ocean"}, m.ListThemes())

	require.NoError(t, m.SetTheme("EASEL LIGHT"))
	require.Equal(t, "Easel Light", m.Current().Name)
	require.Error(t, m.SetTheme("missing"))
	require.Equal(t, "Easel Light", m.Current().Name)
}

func TestManagerFallsBackToDefault(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"), "unknown")
	require.Equal(t, EaselDark.Name, m.Current().Name)
	_, ok := m.GetTheme("easel light")
	require.True(t, ok)
}
