// Package history provides interchangeable snapshot retention strategies
// that decide how a canvas records its states and resolves undo.
package history

import (
	"errors"

	"github.com/bethropolis/easel/internal/replay"
	"github.com/bethropolis/easel/internal/snapshot"
)

// DefaultMaxHistory bounds a Recording created without an explicit limit.
const DefaultMaxHistory = 100

// MinMaxHistory is the smallest bound that can still roll back one step:
// the floor plus the state recorded after it.
const MinMaxHistory = 2

var (
	// ErrEmptyHistory means there is no state older than the current one.
	ErrEmptyHistory = errors.New("history: no earlier state to undo to")
	// ErrReplayUnsupported means the strategy keeps no sequence to replay.
	ErrReplayUnsupported = errors.New("history: strategy does not support replay")
)

// Strategy governs how snapshots are retained and how undo resolves.
type Strategy interface {
	// Record stores a new snapshot.
	Record(s snapshot.Snapshot)
	// ResolvePrevious returns the snapshot the canvas should adopt on undo.
	// With ErrEmptyHistory the returned snapshot is the oldest one retained,
	// so callers can clamp to it.
	ResolvePrevious() (snapshot.Snapshot, error)
	// Current returns the most recently recorded or resolved snapshot.
	Current() snapshot.Snapshot
	// Len returns how many snapshots are retained.
	Len() int
}

// Replayable is implemented by strategies that keep an ordered sequence.
type Replayable interface {
	Iterator() *replay.Iterator
	Snapshots() []snapshot.Snapshot
	// CanUndo reports whether an earlier state is retained.
	CanUndo() bool
	// Clear drops everything but a fresh empty-canvas snapshot.
	Clear()
}

// Kind names a strategy in configuration.
type Kind string

const (
	KindRecording Kind = "recording"
	KindNull      Kind = "null"
)

// New builds a strategy by kind. Unknown kinds fall back to recording.
func New(kind Kind, maxHistory int) Strategy {
	if kind == KindNull {
		return NewNull()
	}
	return NewRecording(maxHistory)
}

// Replay returns an iterator for s, or ErrReplayUnsupported.
func Replay(s Strategy) (*replay.Iterator, error) {
	r, ok := s.(Replayable)
	if !ok {
		return nil, ErrReplayUnsupported
	}
	return r.Iterator(), nil
}
