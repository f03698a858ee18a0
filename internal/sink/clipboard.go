package sink

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/easel/internal/replay"
)

// ErrClipboardUnsupported is returned when no system clipboard is available.
var ErrClipboardUnsupported = errors.New("sink: system clipboard unavailable")

// Clipboard copies emitted lines to the system clipboard, one block of text
// holding every line emitted so far.
type Clipboard struct {
	mu       sync.Mutex
	lines    []string
	width    int
	writeAll func(string) error
}

var _ replay.Sink = (*Clipboard)(nil)

// NewClipboard creates a clipboard sink. It fails when the platform has no clipboard.
func NewClipboard(width int) (*Clipboard, error) {
	if clipboard.Unsupported {
		return nil, ErrClipboardUnsupported
	}
	return &Clipboard{width: width, writeAll: clipboard.WriteAll}, nil
}

// Emit appends the line and rewrites the clipboard contents.
func (s *Clipboard) Emit(f replay.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, replay.Truncate(f.Line(), s.width))
	if err := s.writeAll(strings.Join(s.lines, "\n")); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Lines returns what has been copied so far.
func (s *Clipboard) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}
