package app

import (
	"fmt"

	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/plugin"

	"github.com/bethropolis/easel/plugins/autosave"
	"github.com/bethropolis/easel/plugins/shapecount"
)

// defaultPlugins lists the constructors of the bundled plugins.
// Adding a new plugin means adding its constructor here.
func defaultPlugins() []func() plugin.Plugin {
	return []func() plugin.Plugin{
		shapecount.New,
		autosave.New,
	}
}

// registerPlugins registers every plugin with the manager.
func registerPlugins(pm *plugin.Manager, ctors []func() plugin.Plugin) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	var finalErr error
	for _, newPlugin := range ctors {
		p := newPlugin()
		pluginName := p.Name()

		logger.Debugf("Registering plugin: %s", pluginName)
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", pluginName, err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr // Keep the first error encountered
			}
		}
	}

	return finalErr
}
