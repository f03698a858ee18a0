// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bethropolis/easel/internal/canvas"
	"github.com/bethropolis/easel/internal/config"
	"github.com/bethropolis/easel/internal/event"
	"github.com/bethropolis/easel/internal/history"
	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/plugin"
	"github.com/bethropolis/easel/internal/replay"
	"github.com/bethropolis/easel/internal/statusbar"
	"github.com/bethropolis/easel/internal/store"
	"github.com/bethropolis/easel/internal/theme"
)

var (
	// ErrUnknownCommand is returned by ExecuteCommand for unregistered names.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNoStore is returned by SaveHistory when no store path is configured.
	ErrNoStore = errors.New("no history store configured")
)

// App encapsulates the canvas, its history and everything observing it.
type App struct {
	cfg           *config.Config
	canvas        *canvas.Canvas
	history       history.Strategy
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	statusBar     *statusbar.StatusBar
	themeManager  *theme.Manager
	sink          replay.Sink
	canvasAPI     plugin.CanvasAPI

	output  io.Writer
	plugins []func() plugin.Plugin

	cmdMu    sync.RWMutex
	commands map[string]plugin.CommandFunc

	emitMu sync.Mutex
	seq    int
}

// Option customizes an App before it is assembled.
type Option func(*App)

// WithSink overrides the sink chosen from configuration.
func WithSink(s replay.Sink) Option {
	return func(a *App) { a.sink = s }
}

// WithOutput sets the writer text and JSON sinks write to (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.output = w }
}

// WithPlugins replaces the default plugin set.
func WithPlugins(ctors ...func() plugin.Plugin) Option {
	return func(a *App) { a.plugins = ctors }
}

// New creates and initializes a new application instance.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	a := &App{
		cfg:           cfg,
		eventManager:  event.NewManager(),
		pluginManager: plugin.NewManager(),
		statusBar:     statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout}),
		output:        os.Stdout,
		plugins:       defaultPlugins(),
		commands:      make(map[string]plugin.CommandFunc),
	}
	for _, opt := range opts {
		opt(a)
	}

	// --- History & Canvas ---
	h, restored, err := a.buildHistory()
	if err != nil {
		return nil, err
	}
	a.history = h
	a.canvas = canvas.New(h)
	a.canvas.SetEventManager(a.eventManager)

	// --- Theme & Sink ---
	themesDir := cfg.Theme.Dir
	if themesDir == "" {
		themesDir = theme.DefaultThemesDir(config.AppName)
	}
	a.themeManager = theme.NewManager(themesDir, cfg.Theme.Name)
	if a.sink == nil {
		s, err := newSink(cfg.Replay, a.output, a.statusBar, a.themeManager.Current())
		if err != nil {
			return nil, fmt.Errorf("sink initialization failed: %w", err)
		}
		a.sink = s
	}

	// --- Status & Events ---
	a.statusBar.SetHistoryKind(cfg.Canvas.History)
	a.refreshStatus()
	a.subscribeStatusHandlers()

	// --- Commands & Plugins ---
	a.canvasAPI = newCanvasAPI(a)
	registerAppCommands(a)
	if err := registerPlugins(a.pluginManager, a.plugins); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.canvasAPI); err != nil {
		logger.Warnf("App: %v", err)
	}

	if restored > 0 {
		a.eventManager.Dispatch(event.TypeHistoryRestored, event.HistoryData{Path: cfg.Store.Path, Count: restored})
	}
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	logger.Infof("App: Ready. History: %s, Sink: %s", cfg.Canvas.History, cfg.Replay.Sink)
	return a, nil
}

// buildHistory creates the configured strategy, restoring persisted snapshots
// for a recording history. It returns how many snapshots were restored.
func (a *App) buildHistory() (history.Strategy, int, error) {
	kind := history.Kind(a.cfg.Canvas.History)
	if kind != history.KindRecording || a.cfg.Store.Path == "" {
		return history.New(kind, a.cfg.Canvas.MaxHistory), 0, nil
	}

	snaps, err := store.Load(a.cfg.Store.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("restore history: %w", err)
	}
	if len(snaps) > 0 {
		logger.Infof("App: Restored %d snapshot(s) from %s", len(snaps), a.cfg.Store.Path)
	}
	return history.NewRecordingFrom(snaps, a.cfg.Canvas.MaxHistory), len(snaps), nil
}

// Canvas returns the application canvas.
func (a *App) Canvas() *canvas.Canvas { return a.canvas }

// History returns the strategy backing the canvas.
func (a *App) History() history.Strategy { return a.history }

// EventManager returns the application event bus.
func (a *App) EventManager() *event.Manager { return a.eventManager }

// Themes returns the theme manager.
func (a *App) Themes() *theme.Manager { return a.themeManager }

// Config returns the configuration the app was built with.
func (a *App) Config() *config.Config { return a.cfg }

// AddShape adds a shape to the canvas.
func (a *App) AddShape(label string) { a.canvas.AddShape(label) }

// ClearAll clears the canvas.
func (a *App) ClearAll() { a.canvas.ClearAll() }

// Undo rolls the canvas back one step. See canvas.Canvas.Undo.
func (a *App) Undo() (bool, error) { return a.canvas.Undo() }

// Show emits the current canvas state. An empty label uses the configured one.
func (a *App) Show(label string) error {
	if label == "" {
		label = a.cfg.Replay.ShowLabel
	}
	a.emitMu.Lock()
	defer a.emitMu.Unlock()
	f := replay.NewFrame(a.seq, label, a.history.Current())
	a.seq++
	return a.sink.Emit(f)
}

// Replay emits every recorded state in order. It fails with
// history.ErrReplayUnsupported for strategies that keep no sequence.
func (a *App) Replay() (int, error) {
	it, err := history.Replay(a.history)
	if err != nil {
		return 0, err
	}
	a.emitMu.Lock()
	n, err := replay.NewView(it, a.sink, a.cfg.Replay.Label).Replay()
	a.emitMu.Unlock()
	if err != nil {
		return n, err
	}
	a.eventManager.Dispatch(event.TypeReplayFinished, event.ReplayFinishedData{Frames: n})
	return n, nil
}

// ResetHistory drops every recorded state and empties the canvas.
// It fails with history.ErrReplayUnsupported for strategies that keep no sequence.
func (a *App) ResetHistory() error {
	r, ok := a.history.(history.Replayable)
	if !ok {
		return history.ErrReplayUnsupported
	}
	r.Clear()
	a.canvas.Sync()
	return nil
}

// SaveHistory writes the recorded snapshots to the configured store.
func (a *App) SaveHistory() error {
	if a.cfg.Store.Path == "" {
		return ErrNoStore
	}
	r, ok := a.history.(history.Replayable)
	if !ok {
		return history.ErrReplayUnsupported
	}
	snaps := r.Snapshots()
	if err := store.Save(a.cfg.Store.Path, snaps); err != nil {
		return err
	}
	a.statusBar.SetUnsaved(false)
	logger.InfoTagf("store", "App: Saved %d snapshot(s) to %s", len(snaps), a.cfg.Store.Path)
	a.eventManager.Dispatch(event.TypeHistorySaved, event.HistoryData{Path: a.cfg.Store.Path, Count: len(snaps)})
	return nil
}

// SetStatusMessage shows a temporary message and emits it as a status line.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	msg := fmt.Sprintf(format, args...)
	logger.Infof("Status: %s", msg)

	a.emitMu.Lock()
	defer a.emitMu.Unlock()
	if err := a.sink.Emit(replay.Frame{Seq: a.seq, Label: msg}); err != nil {
		logger.Warnf("App: Failed to emit status message: %v", err)
	}
	a.seq++
}

// StatusText returns the status bar line.
func (a *App) StatusText() string {
	return a.statusBar.Text(a.cfg.Replay.MaxLineWidth)
}

// Close announces shutdown, stops plugins and releases the sink.
func (a *App) Close() error {
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	var errs []error
	if err := a.pluginManager.ShutdownPlugins(); err != nil {
		errs = append(errs, err)
	}
	if c, ok := a.sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close sink: %w", err))
		}
	}
	logger.Infof("App: Closed.")
	return errors.Join(errs...)
}
