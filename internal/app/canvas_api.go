// internal/app/canvas_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/easel/internal/event"
	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/plugin"
)

// Ensure appCanvasAPI implements the plugin.CanvasAPI interface.
var _ plugin.CanvasAPI = (*appCanvasAPI)(nil)

// appCanvasAPI provides the concrete implementation of the CanvasAPI interface.
type appCanvasAPI struct {
	app *App
}

func newCanvasAPI(app *App) *appCanvasAPI {
	return &appCanvasAPI{app: app}
}

func (api *appCanvasAPI) GetShapes() []string {
	return api.app.canvas.Shapes()
}

func (api *appCanvasAPI) GetHistoryDepth() int {
	return api.app.history.Len()
}

func (api *appCanvasAPI) GetHistoryKind() string {
	return api.app.cfg.Canvas.History
}

func (api *appCanvasAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appCanvasAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// RegisterCommand makes cmdFunc callable through ExecuteCommand.
func (api *appCanvasAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	a := api.app
	a.cmdMu.Lock()
	defer a.cmdMu.Unlock()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := a.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.commands[name] = cmdFunc
	logger.DebugTagf("command", "App: Registered command '%s'", name)
	return nil
}

func (api *appCanvasAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
}

func (api *appCanvasAPI) SaveHistory() error {
	return api.app.SaveHistory()
}

func (api *appCanvasAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}
