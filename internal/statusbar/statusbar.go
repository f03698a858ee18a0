// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/easel/internal/replay"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar summarizes canvas state in one line and shows temporary messages.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	historyKind  string
	shapeCount   int
	historyDepth int
	unsaved      bool

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	if config.MessageTimeout <= 0 {
		config.MessageTimeout = DefaultConfig().MessageTimeout
	}
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetHistoryKind updates the displayed history strategy name.
func (sb *StatusBar) SetHistoryKind(kind string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.historyKind = kind
}

// SetCanvasInfo updates the shape count and retained history depth.
func (sb *StatusBar) SetCanvasInfo(shapes, depth int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.shapeCount = shapes
	sb.historyDepth = depth
}

// SetUnsaved marks whether history changed since the last save.
func (sb *StatusBar) SetUnsaved(unsaved bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.unsaved = unsaved
}

// Unsaved reports whether history changed since the last save.
func (sb *StatusBar) Unsaved() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.unsaved
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text. Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	kind := sb.historyKind
	if kind == "" {
		kind = "recording"
	}
	unsaved := ""
	if sb.unsaved {
		unsaved = " [Unsaved]"
	}
	return fmt.Sprintf("[%s]%s -- Shapes: %d, History: %d", kind, unsaved, sb.shapeCount, sb.historyDepth)
}

// Summary returns the canvas summary, ignoring any temporary message.
func (sb *StatusBar) Summary() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.getDefaultDisplayText()
}

// Text returns the line to display, at most width cells wide (width <= 0: unlimited).
// An expired temporary message is cleared first.
func (sb *StatusBar) Text(width int) string {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	text := sb.getDefaultDisplayText()
	if active {
		text = sb.tempMessage
	}
	return replay.Truncate(text, width)
}
