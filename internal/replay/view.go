package replay

import (
	"fmt"
	"slices"
	"time"

	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/snapshot"
)

// Frame is one observable output record: a reconstructed state, or a plain
// status line when Shapes is nil and SnapshotID is empty.
type Frame struct {
	Seq        int
	Label      string
	Shapes     []string
	SnapshotID string
	Taken      time.Time
}

// Line renders the frame in the line-oriented output format.
func (f Frame) Line() string {
	return FormatLine(f.Label, f.Shapes)
}

// NewFrame builds a frame for a snapshot.
func NewFrame(seq int, label string, s snapshot.Snapshot) Frame {
	return Frame{
		Seq:        seq,
		Label:      label,
		Shapes:     s.Contents(),
		SnapshotID: s.ID().String(),
		Taken:      s.Taken(),
	}
}

// Sink receives frames. The core calls it but does not own it.
type Sink interface {
	Emit(f Frame) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(f Frame) error

// Emit calls fn(f).
func (fn SinkFunc) Emit(f Frame) error { return fn(f) }

// View drains an iterator and emits every reconstructed state in order.
type View struct {
	iter   *Iterator
	sink   Sink
	label  string
	shapes []string
}

// NewView creates a replay view. An empty label falls back to DefaultLabel.
func NewView(iter *Iterator, sink Sink, label string) *View {
	if label == "" {
		label = DefaultLabel
	}
	return &View{iter: iter, sink: sink, label: label}
}

// Replay emits one frame per remaining snapshot until the iterator is finished.
// It returns the number of frames emitted.
func (v *View) Replay() (int, error) {
	emitted := 0
	for !v.iter.IsFinished() {
		next := v.iter.Next()
		v.shapes = next.Contents()
		if err := v.sink.Emit(NewFrame(emitted, v.label, next)); err != nil {
			return emitted, fmt.Errorf("replay frame %d: %w", emitted, err)
		}
		emitted++
	}
	logger.DebugTagf("replay", "Replay: emitted %d frame(s)", emitted)
	return emitted, nil
}

// Shapes returns the most recently reconstructed state.
func (v *View) Shapes() []string {
	return slices.Clone(v.shapes)
}
