// Package replay walks recorded snapshots in chronological order and
// reconstructs every intermediate canvas state.
package replay

import (
	"slices"

	"github.com/bethropolis/easel/internal/snapshot"
)

// Iterator is a read-only forward cursor over snapshots.
// It keeps its own copy of the sequence taken at creation, so the owning
// history may keep recording while the iterator is live.
type Iterator struct {
	snapshots []snapshot.Snapshot
	cursor    int
}

// NewIterator creates an iterator positioned before the first snapshot.
func NewIterator(snapshots []snapshot.Snapshot) *Iterator {
	return &Iterator{snapshots: slices.Clone(snapshots)}
}

// Next returns the snapshot at the cursor and advances.
// Calling Next on a finished iterator is a programming error and panics.
func (it *Iterator) Next() snapshot.Snapshot {
	if it.IsFinished() {
		panic("replay: Next called on finished iterator")
	}
	s := it.snapshots[it.cursor]
	it.cursor++
	return s
}

// IsFinished reports whether every snapshot has been returned.
func (it *Iterator) IsFinished() bool {
	return it.cursor >= len(it.snapshots)
}

// Len returns the number of snapshots captured at creation.
func (it *Iterator) Len() int { return len(it.snapshots) }

// Remaining returns how many snapshots Next will still return.
func (it *Iterator) Remaining() int { return len(it.snapshots) - it.cursor }

// Reset rewinds the cursor to the first snapshot.
func (it *Iterator) Reset() { it.cursor = 0 }
