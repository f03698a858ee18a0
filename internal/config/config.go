// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/easel/internal/history"
	"github.com/bethropolis/easel/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`
	Canvas  CanvasConfig                      `toml:"canvas"`
	Replay  ReplayConfig                      `toml:"replay"`
	Store   StoreConfig                       `toml:"store"`
	Theme   ThemeConfig                       `toml:"theme"`
	Plugins map[string]map[string]interface{} `toml:"plugins"` // [plugins.<name>] tables
}

// CanvasConfig selects the history strategy.
type CanvasConfig struct {
	History    string `toml:"history"` // "recording" or "null"
	MaxHistory int    `toml:"max_history"`
}

// ReplayConfig controls how states are written out.
type ReplayConfig struct {
	Sink         string `toml:"sink"` // "text", "json", "clipboard" or "screen"
	Label        string `toml:"label"`
	ShowLabel    string `toml:"show_label"`
	MaxLineWidth int    `toml:"max_line_width"` // 0 disables truncation
}

// StoreConfig points at the persisted history file.
type StoreConfig struct {
	Path string `toml:"path"` // Empty disables persistence
}

// ThemeConfig selects the screen sink's theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"` // Extra *.toml themes; empty uses ~/.config/easel/themes
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

var validSinks = map[string]struct{}{"text": {}, "json": {}, "clipboard": {}, "screen": {}}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Canvas: CanvasConfig{
			History:    DefaultHistory,
			MaxHistory: DefaultMaxHistory,
		},
		Replay: ReplayConfig{
			Sink:      DefaultSink,
			Label:     DefaultReplayLabel,
			ShowLabel: DefaultShowLabel,
		},
		Theme: ThemeConfig{
			Name: DefaultThemeName,
		},
	}
}

// loadFromFile decodes a TOML file over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config, verbose bool) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	if verbose {
		logger.Infof("Successfully loaded configuration from: %s", filePath)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	c.Canvas.History = strings.ToLower(strings.TrimSpace(c.Canvas.History))
	if c.Canvas.History != "recording" && c.Canvas.History != "null" {
		c.Canvas.History = defaults.Canvas.History
	}
	if c.Canvas.MaxHistory <= 0 {
		c.Canvas.MaxHistory = defaults.Canvas.MaxHistory
	} else if c.Canvas.MaxHistory < history.MinMaxHistory {
		c.Canvas.MaxHistory = history.MinMaxHistory
	}

	c.Replay.Sink = strings.ToLower(strings.TrimSpace(c.Replay.Sink))
	if _, ok := validSinks[c.Replay.Sink]; !ok {
		c.Replay.Sink = defaults.Replay.Sink
	}
	if c.Replay.MaxLineWidth < 0 {
		c.Replay.MaxLineWidth = 0
	}

	if strings.TrimSpace(c.Theme.Name) == "" {
		c.Theme.Name = defaults.Theme.Name
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// DefaultConfigPath returns the per-user config file location, or "" if unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// Load builds a configuration from defaults, the file at configFilePath
// (or the default location when empty), and flag overrides, then validates it.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	// The logger is not initialized yet during the first load.
	verbose := false

	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var err error
	if effectivePath != "" {
		err = loadFromFile(effectivePath, cfg, verbose)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg, verbose)
	}

	cfg.validate()
	return cfg, err
}

// LoadConfig loads the process-wide configuration once; later calls return the first result.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// PluginValue returns a raw value from the [plugins.<name>] table.
func (c *Config) PluginValue(pluginName, key string) (interface{}, bool) {
	table, ok := c.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}
