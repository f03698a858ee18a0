// Package sink provides the output targets replayed and displayed states are emitted to.
package sink

import (
	"fmt"
	"io"
	"sync"

	"github.com/bethropolis/easel/internal/replay"
)

// Writer writes one text line per frame.
type Writer struct {
	mu    sync.Mutex
	w     io.Writer
	width int
}

var _ replay.Sink = (*Writer)(nil)

// NewWriter creates a text sink. width > 0 truncates lines to that many cells.
func NewWriter(w io.Writer, width int) *Writer {
	return &Writer{w: w, width: width}
}

// Emit writes the frame's line followed by a newline.
func (s *Writer) Emit(f replay.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, replay.Truncate(f.Line(), s.width)); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
