package app

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bethropolis/easel/internal/history"
	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/plugin"
	"github.com/bethropolis/easel/internal/tui"
)

// ExecuteCommand runs a built-in or plugin command by name.
func (a *App) ExecuteCommand(name string, args []string) error {
	a.cmdMu.RLock()
	cmd, ok := a.commands[name]
	a.cmdMu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownCommand, name)
	}
	logger.DebugTagf("command", "App: Executing '%s' %v", name, args)
	if err := cmd(args); err != nil {
		return fmt.Errorf("command '%s': %w", name, err)
	}
	return nil
}

// CommandNames returns every registered command, sorted.
func (a *App) CommandNames() []string {
	a.cmdMu.RLock()
	defer a.cmdMu.RUnlock()
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// canUndo reports whether the history still holds an earlier state.
func (a *App) canUndo() bool {
	r, ok := a.history.(history.Replayable)
	return ok && r.CanUndo()
}

// registerAppCommands registers built-in commands like add and undo.
func registerAppCommands(app *App) {
	api := app.canvasAPI

	builtins := map[string]plugin.CommandFunc{
		"add": func(args []string) error {
			if len(args) == 0 {
				return errors.New("usage: add <shape>...")
			}
			for _, label := range args {
				app.AddShape(label)
			}
			return nil
		},
		"clear": func(args []string) error {
			app.ClearAll()
			return nil
		},
		"undo": func(args []string) error {
			steps := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid undo count '%s'", args[0])
				}
				steps = n
			}
			for i := 0; i < steps; i++ {
				changed, err := app.Undo()
				if err != nil {
					return err
				}
				if !changed && !app.canUndo() {
					api.SetStatusMessage("Already at oldest change")
					break
				}
			}
			return nil
		},
		"reset": func(args []string) error {
			if err := app.ResetHistory(); err != nil {
				return err
			}
			api.SetStatusMessage("History reset")
			return nil
		},
		"show": func(args []string) error {
			return app.Show(strings.Join(args, " "))
		},
		"replay": func(args []string) error {
			_, err := app.Replay()
			return err
		},
		"save": func(args []string) error {
			if err := app.SaveHistory(); err != nil {
				return err
			}
			api.SetStatusMessage("Saved history to %s", app.cfg.Store.Path)
			return nil
		},
		"status": func(args []string) error {
			api.SetStatusMessage("%s", app.statusBar.Summary())
			return nil
		},
		"theme": func(args []string) error {
			if len(args) == 0 {
				api.SetStatusMessage("Current theme: %s", app.themeManager.Current().Name)
				return nil
			}
			themeName := strings.Join(args, " ") // Allow theme names with spaces
			if err := app.themeManager.SetTheme(themeName); err != nil {
				return fmt.Errorf("theme '%s' not found. Available: %s", themeName, strings.Join(app.themeManager.ListThemes(), ", "))
			}
			if s, ok := app.sink.(*tui.Sink); ok {
				s.SetTheme(app.themeManager.Current())
			}
			api.SetStatusMessage("Theme set to: %s", app.themeManager.Current().Name)
			return nil
		},
		"themes": func(args []string) error {
			api.SetStatusMessage("Available themes: %s", strings.Join(app.themeManager.ListThemes(), ", "))
			return nil
		},
		"commands": func(args []string) error {
			api.SetStatusMessage("Commands: %s", strings.Join(app.CommandNames(), ", "))
			return nil
		},
	}

	for name, fn := range builtins {
		if err := api.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register '%s' command: %v", name, err)
		}
	}
}
