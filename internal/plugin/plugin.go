// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/easel/internal/event"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes arguments (e.g., from a script step) and returns an error.
type CommandFunc func(args []string) error

// CanvasAPI defines the methods plugins can use to interact with the application.
// This acts as a controlled interface, preventing plugins from accessing everything.
type CanvasAPI interface {
	// --- Canvas Access (Read-Only) ---
	GetShapes() []string
	GetHistoryDepth() int
	GetHistoryKind() string

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status ---
	SetStatusMessage(format string, args ...interface{})

	// --- Persistence ---
	SaveHistory() error

	// --- Configuration ---
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// Used for setup, subscribing to events, registering commands.
	Initialize(api CanvasAPI) error

	// Shutdown is called once when the application is closing.
	Shutdown() error
}
