// Package snapshot holds immutable captures of canvas contents.
package snapshot

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable, timestamped capture of the shapes on a canvas.
// The zero value is a valid snapshot of an empty canvas.
type Snapshot struct {
	id     uuid.UUID
	taken  time.Time
	shapes []string
}

// New captures shapes. The input slice is copied, so later changes to it do not leak in.
func New(shapes []string) Snapshot {
	return Snapshot{
		id:     uuid.New(),
		taken:  time.Now(),
		shapes: slices.Clone(shapes),
	}
}

// Empty returns a snapshot of a canvas with no shapes.
func Empty() Snapshot {
	return New(nil)
}

// Restore rebuilds a snapshot previously persisted with its identity and time.
func Restore(id uuid.UUID, taken time.Time, shapes []string) Snapshot {
	return Snapshot{
		id:     id,
		taken:  taken,
		shapes: slices.Clone(shapes),
	}
}

// ID returns the snapshot's unique identifier.
func (s Snapshot) ID() uuid.UUID { return s.id }

// Taken returns when the snapshot was captured.
func (s Snapshot) Taken() time.Time { return s.taken }

// Contents returns a copy of the captured shapes, in order.
func (s Snapshot) Contents() []string {
	return slices.Clone(s.shapes)
}

// Len returns the number of captured shapes.
func (s Snapshot) Len() int { return len(s.shapes) }

// Equal reports whether two snapshots capture the same shapes in the same order.
// Identity and timestamp are ignored.
func (s Snapshot) Equal(other Snapshot) bool {
	return slices.Equal(s.shapes, other.shapes)
}
