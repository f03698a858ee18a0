package history

import (
	"slices"
	"sync"

	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/replay"
	"github.com/bethropolis/easel/internal/snapshot"
)

// Recording keeps an undo stack of snapshots. It is never empty: it starts
// seeded with the empty-canvas snapshot.
type Recording struct {
	mutex      sync.Mutex
	snapshots  []snapshot.Snapshot
	maxHistory int
}

var (
	_ Strategy   = (*Recording)(nil)
	_ Replayable = (*Recording)(nil)
)

// NewRecording creates a recording history seeded with the empty state.
func NewRecording(maxHistory int) *Recording {
	return NewRecordingFrom(nil, maxHistory)
}

// NewRecordingFrom creates a recording history holding previously persisted
// snapshots, oldest first. An empty input seeds the empty state instead.
// maxHistory <= 0 uses DefaultMaxHistory; smaller positive bounds are raised to MinMaxHistory.
func NewRecordingFrom(snaps []snapshot.Snapshot, maxHistory int) *Recording {
	switch {
	case maxHistory <= 0:
		maxHistory = DefaultMaxHistory
	case maxHistory < MinMaxHistory:
		maxHistory = MinMaxHistory
	}
	r := &Recording{maxHistory: maxHistory}
	if len(snaps) == 0 {
		r.snapshots = append(make([]snapshot.Snapshot, 0, maxHistory), snapshot.Empty())
	} else {
		r.snapshots = slices.Clone(snaps)
		r.evictLocked()
	}
	return r
}

// Record appends a snapshot, evicting the oldest ones past the limit.
func (r *Recording) Record(s snapshot.Snapshot) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.snapshots = append(r.snapshots, s)
	r.evictLocked()
	logger.DebugTagf("history", "History: Recorded snapshot %s (%d shapes). Count: %d", s.ID(), s.Len(), len(r.snapshots))
}

func (r *Recording) evictLocked() {
	if len(r.snapshots) > r.maxHistory {
		r.snapshots = r.snapshots[len(r.snapshots)-r.maxHistory:]
	}
}

// ResolvePrevious drops the newest snapshot and returns the one before it.
// When only one snapshot remains it is returned with ErrEmptyHistory and kept.
func (r *Recording) ResolvePrevious() (snapshot.Snapshot, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if len(r.snapshots) < 2 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return r.snapshots[0], ErrEmptyHistory
	}
	r.snapshots[len(r.snapshots)-1] = snapshot.Snapshot{}
	r.snapshots = r.snapshots[:len(r.snapshots)-1]
	prev := r.snapshots[len(r.snapshots)-1]
	logger.DebugTagf("history", "History: Undo to snapshot %s. Count: %d", prev.ID(), len(r.snapshots))
	return prev, nil
}

// Current returns the newest snapshot.
func (r *Recording) Current() snapshot.Snapshot {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.snapshots[len(r.snapshots)-1]
}

// Len returns the number of retained snapshots.
func (r *Recording) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.snapshots)
}

// CanUndo returns true if there is an earlier state to roll back to.
func (r *Recording) CanUndo() bool {
	return r.Len() > 1
}

// Snapshots returns a copy of the retained snapshots, oldest first.
func (r *Recording) Snapshots() []snapshot.Snapshot {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return slices.Clone(r.snapshots)
}

// Iterator returns a forward iterator over the snapshots retained right now.
// Snapshots recorded afterwards are not visited.
func (r *Recording) Iterator() *replay.Iterator {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return replay.NewIterator(r.snapshots)
}

// Clear resets the history to the single empty-canvas snapshot.
func (r *Recording) Clear() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.snapshots = append(r.snapshots[:0:0], snapshot.Empty())
	logger.DebugTagf("history", "History: Cleared.")
}
