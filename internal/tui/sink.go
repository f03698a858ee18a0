package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/replay"
	"github.com/bethropolis/easel/internal/theme"
)

// Sink paints emitted frames as lines on the screen, scrolling up when full.
// Only the lines that fit are kept. When a status source is set, the last
// row is reserved for it.
type Sink struct {
	mu      sync.Mutex
	tui     *TUI
	theme   *theme.Theme
	lines   []replay.Frame
	status  func(width int) string
	unsaved func() bool
}

var _ replay.Sink = (*Sink)(nil)

// NewSink creates a sink drawing on t with the given theme (Easel Dark when nil).
func NewSink(t *TUI, th *theme.Theme) *Sink {
	if th == nil {
		th = &theme.EaselDark
	}
	t.GetScreen().SetStyle(th.GetStyle(theme.StyleDefault))
	return &Sink{tui: t, theme: th}
}

// SetStatusSource installs the provider of the bottom status row. unsaved may
// be nil; when it reports true the row uses the unsaved style.
func (s *Sink) SetStatusSource(status func(width int) string, unsaved func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.unsaved = unsaved
}

// SetTheme switches styles and repaints.
func (s *Sink) SetTheme(th *theme.Theme) {
	if th == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = th
	s.tui.GetScreen().SetStyle(th.GetStyle(theme.StyleDefault))
	s.draw()
}

// Emit appends the frame and redraws the visible tail.
func (s *Sink) Emit(f replay.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, f)
	s.draw()
	return nil
}

// Close waits for a key press so the output can be read, then restores the terminal.
func (s *Sink) Close() error {
	logger.Debugf("TUI sink: waiting for key before closing")
	s.tui.WaitForKey()
	s.tui.Close()
	return nil
}

func (s *Sink) draw() {
	width, height := s.tui.Size()
	rows := height
	if s.status != nil {
		rows--
	}
	if rows <= 0 {
		s.lines = nil
		return
	}
	if len(s.lines) > rows {
		s.lines = append(s.lines[:0:0], s.lines[len(s.lines)-rows:]...)
	}

	screen := s.tui.GetScreen()
	s.tui.Clear()
	for row, f := range s.lines {
		if isMessage(f) {
			drawString(screen, 0, row, width, f.Label, s.theme.GetStyle(theme.StyleMessage))
			continue
		}
		x := drawString(screen, 0, row, width, f.Label, s.theme.GetStyle(theme.StyleLabel))
		drawString(screen, x, row, width, replay.FormatLine("", f.Shapes), s.theme.GetStyle(theme.StyleShape))
	}
	if s.status != nil {
		style := s.theme.GetStyle(theme.StyleStatusBar)
		if s.unsaved != nil && s.unsaved() {
			style = s.theme.GetStyle(theme.StyleStatusBarUnsaved)
		}
		for x := 0; x < width; x++ {
			screen.SetContent(x, height-1, ' ', nil, style)
		}
		drawString(screen, 0, height-1, width, s.status(width), style)
	}
	s.tui.Show()
}

// isMessage reports whether f carries a status message rather than a canvas state.
func isMessage(f replay.Frame) bool {
	return f.SnapshotID == "" && f.Shapes == nil
}

// drawString paints text from column x, one grapheme cluster per cell run,
// and returns the column after the last painted cluster.
func drawString(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := gr.Width()
		if x+w > maxWidth {
			break
		}
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
