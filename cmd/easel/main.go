// cmd/easel/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bethropolis/easel/internal/app"
	"github.com/bethropolis/easel/internal/config"
	"github.com/bethropolis/easel/internal/history"
	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/script"
)

var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	var flags config.Flags
	if _, err := flags.ParseFlags(flag.CommandLine, os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}
	logger.SetFilterDebug(*flags.DebugLog)

	// --- Configuration ---
	cfg, err := config.LoadConfig(*flags.ConfigFilePath, &flags)
	if err != nil {
		stlog.Printf("Warning: %v (continuing with defaults)", err)
	}

	// --- Logger Initialization ---
	logOut, closeLog := openLogOutput(cfg.Logger.LogFilePath)
	defer closeLog()
	logger.Init(cfg.Logger, logOut)

	logger.Infof("Starting %s %s...", config.AppName, version)
	logger.Debugf("History: %s (max %d), sink: %s", cfg.Canvas.History, cfg.Canvas.MaxHistory, cfg.Replay.Sink)

	// --- Create and Run App ---
	easelApp, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		logger.Fatalf("Error initializing application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := run(ctx, easelApp, *flags.ScriptPath)
	stop()

	if err := easelApp.Close(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
	if runErr != nil {
		logger.Errorf("Run failed: %v", runErr)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, runErr)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

func run(ctx context.Context, a *app.App, scriptPath string) error {
	if scriptPath != "" {
		s, err := script.Load(scriptPath)
		if err != nil {
			return err
		}
		return script.Run(ctx, a, s)
	}
	return runDemo(a)
}

// runDemo draws four shapes, undoes three of them and replays the history.
func runDemo(a *app.App) error {
	for _, shape := range []string{"rhombus", "triangle", "square", "circle"} {
		a.AddShape(shape)
	}
	if err := a.Show(""); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if _, err := a.Undo(); err != nil {
			return err
		}
	}
	if err := a.Show("Shapes after undo: "); err != nil {
		return err
	}
	if _, err := a.Replay(); err != nil && !errors.Is(err, history.ErrReplayUnsupported) {
		return err
	}
	return nil
}

// openLogOutput resolves the log destination. "-" means stderr; empty means
// a file in the user cache dir, falling back to discarding output.
func openLogOutput(path string) (io.Writer, func()) {
	noop := func() {}
	if path == "-" {
		return os.Stderr, noop
	}
	if path == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return io.Discard, noop
		}
		dir := filepath.Join(cacheDir, config.AppName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return io.Discard, noop
		}
		path = filepath.Join(dir, config.DefaultLogFileName)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		stlog.Printf("Warning: failed to open log file '%s': %v", path, err)
		return io.Discard, noop
	}
	return logFile, func() { logFile.Close() }
}
