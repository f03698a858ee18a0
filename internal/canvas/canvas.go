// Package canvas implements the mutable drawing surface. Every mutation is
// checkpointed through a history.Strategy; the canvas never checks which
// strategy it was given.
package canvas

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bethropolis/easel/internal/event"
	"github.com/bethropolis/easel/internal/history"
	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/snapshot"
)

// Canvas holds an ordered list of shape labels.
type Canvas struct {
	mutex        sync.Mutex
	shapes       []string
	history      history.Strategy
	eventManager *event.Manager
}

// New creates a canvas that adopts the strategy's current snapshot.
// A nil strategy is replaced by history.NewNull.
func New(h history.Strategy) *Canvas {
	if h == nil {
		h = history.NewNull()
	}
	return &Canvas{
		shapes:  h.Current().Contents(),
		history: h,
	}
}

// SetEventManager sets the bus canvas events are dispatched on.
func (c *Canvas) SetEventManager(m *event.Manager) {
	c.mutex.Lock()
	c.eventManager = m
	c.mutex.Unlock()
}

// History returns the strategy the canvas delegates to.
func (c *Canvas) History() history.Strategy {
	return c.history
}

// AddShape appends label and records the new state.
func (c *Canvas) AddShape(label string) {
	c.mutex.Lock()
	c.shapes = append(c.shapes, label)
	snap := c.checkpointLocked()
	mgr := c.eventManager
	c.mutex.Unlock()

	logger.DebugTagf("canvas", "Canvas: Added shape %q. Shapes: %d", label, snap.Len())
	mgr.Dispatch(event.TypeShapeAdded, event.CanvasChangedData{Shapes: snap.Contents(), Snapshot: snap, Changed: true})
}

// ClearAll removes every shape and records the empty state.
func (c *Canvas) ClearAll() {
	c.mutex.Lock()
	c.shapes = c.shapes[:0:0]
	snap := c.checkpointLocked()
	mgr := c.eventManager
	c.mutex.Unlock()

	logger.DebugTagf("canvas", "Canvas: Cleared.")
	mgr.Dispatch(event.TypeCanvasCleared, event.CanvasChangedData{Shapes: nil, Snapshot: snap, Changed: true})
}

func (c *Canvas) checkpointLocked() snapshot.Snapshot {
	snap := snapshot.New(c.shapes)
	c.history.Record(snap)
	return snap
}

// Undo adopts the snapshot the history resolves and reports whether the
// shapes changed. At the oldest state it clamps: the canvas adopts that state
// and Undo returns false with a nil error. A strategy that hands back the
// current state (history.Null) also yields false.
func (c *Canvas) Undo() (bool, error) {
	c.mutex.Lock()
	prev, err := c.history.ResolvePrevious()
	if err != nil && !errors.Is(err, history.ErrEmptyHistory) {
		c.mutex.Unlock()
		logger.Errorf("Canvas: Undo failed: %v", err)
		return false, fmt.Errorf("undo failed: %w", err)
	}
	changed := !slices.Equal(c.shapes, prev.Contents())
	c.shapes = prev.Contents()
	mgr := c.eventManager
	c.mutex.Unlock()

	if changed {
		logger.DebugTagf("canvas", "Canvas: Undo to %d shape(s).", prev.Len())
	} else {
		logger.DebugTagf("canvas", "Canvas: Undo left the shapes unchanged.")
	}
	mgr.Dispatch(event.TypeUndo, event.CanvasChangedData{Shapes: prev.Contents(), Snapshot: prev, Changed: changed})
	return changed, nil
}

// Sync adopts the strategy's current snapshot, e.g. after the history was
// cleared behind the canvas. It dispatches TypeCanvasCleared.
func (c *Canvas) Sync() {
	c.mutex.Lock()
	cur := c.history.Current()
	changed := !slices.Equal(c.shapes, cur.Contents())
	c.shapes = cur.Contents()
	mgr := c.eventManager
	c.mutex.Unlock()

	logger.DebugTagf("canvas", "Canvas: Synced to %d shape(s).", cur.Len())
	mgr.Dispatch(event.TypeCanvasCleared, event.CanvasChangedData{Shapes: cur.Contents(), Snapshot: cur, Changed: changed})
}

// Shapes returns a copy of the current shapes.
func (c *Canvas) Shapes() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return slices.Clone(c.shapes)
}

// Len returns the number of shapes on the canvas.
func (c *Canvas) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.shapes)
}
