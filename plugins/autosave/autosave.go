package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/easel/internal/event"
	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/plugin"
	"github.com/bethropolis/easel/internal/utils"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	// Default configuration values
	defaultEnabled = false
	defaultDelay   = 500 * time.Millisecond
)

// AutoSave persists the history shortly after the canvas changes.
// Bursts of changes collapse into one save; a pending save is flushed on shutdown.
type AutoSave struct {
	api plugin.CanvasAPI

	mutex   sync.RWMutex // Protects the config fields below
	enabled bool
	delay   time.Duration

	debouncer utils.Debouncer
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled: defaultEnabled,
		delay:   defaultDelay,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and subscribes to canvas changes if enabled.
func (p *AutoSave) Initialize(api plugin.CanvasAPI) error {
	p.api = api
	pluginName := p.Name()

	p.mutex.Lock()
	if enabledVal, ok := api.GetPluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}

	if delayVal, ok := api.GetPluginConfigValue(pluginName, "delay"); ok {
		if strVal, isStr := delayVal.(string); isStr {
			parsed, err := time.ParseDuration(strVal)
			if err != nil {
				logger.Warnf("%s: Invalid format for 'delay' config ('%s'): %v. Using default (%v)", pluginName, strVal, err, p.delay)
			} else if parsed < 0 {
				logger.Warnf("%s: 'delay' config must not be negative ('%s'). Using default (%v)", pluginName, strVal, p.delay)
			} else {
				p.delay = parsed
			}
		} else {
			logger.Warnf("%s: Invalid type for 'delay' config (%T), using default (%v)", pluginName, delayVal, p.delay)
		}
	}
	isEnabled := p.enabled
	delay := p.delay
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Delay: %v", pluginName, isEnabled, delay)
	if !isEnabled {
		return nil
	}
	if kind := api.GetHistoryKind(); kind == "null" {
		logger.Warnf("%s: History '%s' keeps nothing to save, staying idle", pluginName, kind)
		return nil
	}

	for _, t := range []event.Type{event.TypeShapeAdded, event.TypeCanvasCleared, event.TypeUndo} {
		api.SubscribeEvent(t, p.handleCanvasChanged)
	}
	return nil
}

// handleCanvasChanged schedules a save.
func (p *AutoSave) handleCanvasChanged(e event.Event) bool {
	if data, ok := e.Data.(event.CanvasChangedData); ok && !data.Changed {
		return false
	}
	p.mutex.RLock()
	delay := p.delay
	p.mutex.RUnlock()

	p.debouncer.Debounce(delay, p.save)
	return false
}

func (p *AutoSave) save() {
	if err := p.api.SaveHistory(); err != nil {
		logger.Errorf("%s: Auto-save failed: %v", p.Name(), err)
		return
	}
	logger.Debugf("%s: Auto-save successful", p.Name())
}

// Shutdown flushes any pending save.
func (p *AutoSave) Shutdown() error {
	if p.debouncer.Flush() {
		logger.Debugf("%s: Flushed pending save on shutdown.", p.Name())
	}
	return nil
}
