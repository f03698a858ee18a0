package app

import (
	"github.com/bethropolis/easel/internal/event"
	"github.com/bethropolis/easel/internal/history"
)

func (a *App) subscribeStatusHandlers() {
	for _, t := range []event.Type{event.TypeShapeAdded, event.TypeCanvasCleared, event.TypeUndo} {
		a.eventManager.Subscribe(t, a.handleCanvasChangedForStatus)
	}
}

// handleCanvasChangedForStatus keeps the status bar counters current.
func (a *App) handleCanvasChangedForStatus(e event.Event) bool {
	a.refreshStatus()
	if data, ok := e.Data.(event.CanvasChangedData); ok && data.Changed && a.canPersist() {
		a.statusBar.SetUnsaved(true)
	}
	return false // Not consumed
}

// canPersist reports whether SaveHistory can succeed in principle.
func (a *App) canPersist() bool {
	_, ok := a.history.(history.Replayable)
	return ok && a.cfg.Store.Path != ""
}

func (a *App) refreshStatus() {
	a.statusBar.SetCanvasInfo(a.canvas.Len(), a.history.Len())
}
