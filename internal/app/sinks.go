package app

import (
	"io"

	"github.com/bethropolis/easel/internal/config"
	"github.com/bethropolis/easel/internal/replay"
	"github.com/bethropolis/easel/internal/sink"
	"github.com/bethropolis/easel/internal/statusbar"
	"github.com/bethropolis/easel/internal/theme"
	"github.com/bethropolis/easel/internal/tui"
)

// newSink builds the sink named in the replay config.
func newSink(cfg config.ReplayConfig, out io.Writer, sb *statusbar.StatusBar, th *theme.Theme) (replay.Sink, error) {
	switch cfg.Sink {
	case "json":
		return sink.NewJSON(out), nil
	case "clipboard":
		c, err := sink.NewClipboard(cfg.MaxLineWidth)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "screen":
		t, err := tui.New()
		if err != nil {
			return nil, err
		}
		s := tui.NewSink(t, th)
		s.SetStatusSource(sb.Text, sb.Unsaved)
		return s, nil
	default:
		return sink.NewWriter(out, cfg.MaxLineWidth), nil
	}
}
