// internal/event/event.go
package event

import "github.com/bethropolis/easel/internal/snapshot"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Canvas events
	TypeShapeAdded    // A shape was appended to the canvas
	TypeCanvasCleared // All shapes were removed
	TypeUndo          // The canvas adopted a previous snapshot

	// History events
	TypeHistoryRestored // History was loaded from the store
	TypeHistorySaved    // History was written to the store
	TypeReplayFinished  // A replay drained its iterator

	// Application lifecycle events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

var typeNames = map[Type]string{
	TypeUnknown:         "unknown",
	TypeShapeAdded:      "shape-added",
	TypeCanvasCleared:   "canvas-cleared",
	TypeUndo:            "undo",
	TypeHistoryRestored: "history-restored",
	TypeHistorySaved:    "history-saved",
	TypeReplayFinished:  "replay-finished",
	TypeAppReady:        "app-ready",
	TypeAppQuit:         "app-quit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// CanvasChangedData is the payload of every canvas event.
type CanvasChangedData struct {
	Shapes   []string
	Snapshot snapshot.Snapshot
	// Changed is false for an undo clamped at the oldest state.
	Changed bool
}

// HistoryData describes a history store operation.
type HistoryData struct {
	Path  string
	Count int
}

// ReplayFinishedData reports how many frames a replay emitted.
type ReplayFinishedData struct {
	Frames int
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
