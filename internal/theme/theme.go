// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/easel/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names the screen sink looks up.
const (
	StyleDefault   = "Default"
	StyleLabel     = "Label"
	StyleShape     = "Shape"
	StyleMessage   = "Message"
	StyleStatusBar = "StatusBar"
	// StyleStatusBarUnsaved is used while the history has unsaved changes.
	StyleStatusBarUnsaved = "StatusBar.unsaved"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the part before the
// first dot and then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Built-in themes ---

// EaselDark is the default theme.
var EaselDark Theme

// EaselLight suits light terminal backgrounds.
var EaselLight Theme

func init() {
	// --- Palette for Easel Dark ---
	dkBackground := tcell.NewHexColor(0x2a2f38)
	dkForeground := tcell.NewHexColor(0xc5cdd9)
	dkYellow := tcell.NewHexColor(0xe5c07b)
	dkGreen := tcell.NewHexColor(0x98c379)
	dkCyan := tcell.NewHexColor(0x56b6c2)

	dkBase := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dkForeground)
	EaselDark = Theme{
		Name:   "Easel Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          dkBase,
			StyleLabel:            dkBase.Foreground(dkCyan).Bold(true),
			StyleShape:            dkBase.Foreground(dkGreen),
			StyleMessage:          dkBase.Foreground(dkYellow),
			StyleStatusBar:        tcell.StyleDefault.Background(dkBackground).Foreground(dkForeground),
			StyleStatusBarUnsaved: tcell.StyleDefault.Background(dkBackground).Foreground(dkYellow),
		},
	}

	// --- Palette for Easel Light ---
	ltBackground := tcell.NewHexColor(0xe5e9f0)
	ltForeground := tcell.NewHexColor(0x2e3440)
	ltBlue := tcell.NewHexColor(0x3b6ea8)
	ltOrange := tcell.NewHexColor(0xb0602a)

	ltBase := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(ltForeground)
	EaselLight = Theme{
		Name: "Easel Light",
		Styles: map[string]tcell.Style{
			StyleDefault:          ltBase,
			StyleLabel:            ltBase.Foreground(ltBlue).Bold(true),
			StyleShape:            ltBase,
			StyleMessage:          ltBase.Foreground(ltOrange),
			StyleStatusBar:        tcell.StyleDefault.Background(ltBackground).Foreground(ltForeground),
			StyleStatusBarUnsaved: tcell.StyleDefault.Background(ltBackground).Foreground(ltOrange),
		},
	}
}
