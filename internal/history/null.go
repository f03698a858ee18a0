package history

import (
	"sync"

	"github.com/bethropolis/easel/internal/snapshot"
)

// Null is the no-history strategy: it keeps only the latest snapshot and
// undo hands that same snapshot back, so undo never changes the canvas.
type Null struct {
	mutex sync.Mutex
	state snapshot.Snapshot
}

var _ Strategy = (*Null)(nil)

// NewNull creates a null history holding the empty state.
func NewNull() *Null {
	return &Null{state: snapshot.Empty()}
}

// Record overwrites the single slot.
func (n *Null) Record(s snapshot.Snapshot) {
	n.mutex.Lock()
	n.state = s
	n.mutex.Unlock()
}

// ResolvePrevious returns the stored snapshot unchanged. It never fails.
func (n *Null) ResolvePrevious() (snapshot.Snapshot, error) {
	return n.Current(), nil
}

// Current returns the stored snapshot.
func (n *Null) Current() snapshot.Snapshot {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.state
}

// Len is always one.
func (n *Null) Len() int { return 1 }
