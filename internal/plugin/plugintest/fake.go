// Package plugintest provides an in-memory plugin.CanvasAPI for plugin tests.
package plugintest

import (
	"fmt"
	"sync"

	"github.com/bethropolis/easel/internal/event"
	"github.com/bethropolis/easel/internal/plugin"
)

// API records what plugins do with it.
type API struct {
	mu sync.Mutex

	Shapes   []string
	Depth    int
	Kind     string
	Config   map[string]map[string]interface{}
	Events   *event.Manager
	Commands map[string]plugin.CommandFunc
	Messages []string
	Saves    int
	SaveErr  error
}

var _ plugin.CanvasAPI = (*API)(nil)

// New creates a fake API with an empty canvas.
func New() *API {
	return &API{
		Kind:     "recording",
		Depth:    1,
		Config:   make(map[string]map[string]interface{}),
		Events:   event.NewManager(),
		Commands: make(map[string]plugin.CommandFunc),
	}
}

func (a *API) GetShapes() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.Shapes...)
}

func (a *API) GetHistoryDepth() int  { return a.Depth }
func (a *API) GetHistoryKind() string { return a.Kind }

func (a *API) DispatchEvent(eventType event.Type, data interface{}) {
	a.Events.Dispatch(eventType, data)
}

func (a *API) SubscribeEvent(eventType event.Type, handler event.Handler) {
	a.Events.Subscribe(eventType, handler)
}

func (a *API) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.Commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.Commands[name] = cmdFunc
	return nil
}

func (a *API) SetStatusMessage(format string, args ...interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Messages = append(a.Messages, fmt.Sprintf(format, args...))
}

func (a *API) SaveHistory() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Saves++
	return a.SaveErr
}

// SaveCount returns how many times SaveHistory ran.
func (a *API) SaveCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Saves
}

func (a *API) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	v, ok := a.Config[pluginName][key]
	return v, ok
}
