package autosave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/easel/internal/event"
	"github.com/bethropolis/easel/internal/plugin/plugintest"
)

func changed() event.CanvasChangedData {
	return event.CanvasChangedData{Changed: true}
}

func TestDisabledByDefault(t *testing.T) {
	api := plugintest.New()
	p := New()
	require.NoError(t, p.Initialize(api))

	api.DispatchEvent(event.TypeShapeAdded, changed())
	require.NoError(t, p.Shutdown())
	require.Zero(t, api.SaveCount())
}

func TestDebouncedSave(t *testing.T) {
	api := plugintest.New()
	api.Config["autosave"] = map[string]interface{}{"enabled": true, "delay": "10ms"}
	p := New()
	require.NoError(t, p.Initialize(api))

	for i := 0; i < 5; i++ {
		api.DispatchEvent(event.TypeShapeAdded, changed())
	}
	require.Eventually(t, func() bool { return api.SaveCount() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Shutdown())
	require.Equal(t, 1, api.SaveCount())
}

func TestShutdownFlushesPendingSave(t *testing.T) {
	api := plugintest.New()
	api.Config["autosave"] = map[string]interface{}{"enabled": true, "delay": "1h"}
	p := New()
	require.NoError(t, p.Initialize(api))

	api.DispatchEvent(event.TypeCanvasCleared, changed())
	api.DispatchEvent(event.TypeUndo, event.CanvasChangedData{Changed: false})
	require.Zero(t, api.SaveCount())

	require.NoError(t, p.Shutdown())
	require.Equal(t, 1, api.SaveCount())
}

func TestClampedUndoDoesNotSchedule(t *testing.T) {
	api := plugintest.New()
	api.Config["autosave"] = map[string]interface{}{"enabled": true, "delay": "1h"}
	p := New()
	require.NoError(t, p.Initialize(api))

	api.DispatchEvent(event.TypeUndo, event.CanvasChangedData{Changed: false})
	require.NoError(t, p.Shutdown())
	require.Zero(t, api.SaveCount())
}

func TestIdleWithNullHistory(t *testing.T) {
	api := plugintest.New()
	api.Kind = "null"
	api.Config["autosave"] = map[string]interface{}{"enabled": true, "delay": "1h"}
	p := New()
	require.NoError(t, p.Initialize(api))

	api.DispatchEvent(event.TypeShapeAdded, changed())
	require.NoError(t, p.Shutdown())
	require.Zero(t, api.SaveCount())
}

func TestInvalidConfigFallsBack(t *testing.T) {
	api := plugintest.New()
	api.Config["autosave"] = map[string]interface{}{"enabled": "yes", "delay": "soon"}
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))
	require.False(t, p.enabled)
	require.Equal(t, defaultDelay, p.delay)
}
