package sink

import (
	"fmt"
	"io"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/bethropolis/easel/internal/replay"
)

// JSON writes one JSON object per frame (JSON Lines).
type JSON struct {
	mu  sync.Mutex
	enc *json.Encoder
}

var _ replay.Sink = (*JSON)(nil)

type jsonFrame struct {
	Seq        int        `json:"seq"`
	Label      string     `json:"label"`
	Shapes     []string   `json:"shapes"`
	Line       string     `json:"line"`
	SnapshotID string     `json:"snapshot_id,omitempty"`
	Taken      *time.Time `json:"taken,omitempty"`
}

// NewJSON creates a JSON Lines sink on w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Emit encodes the frame.
func (s *JSON) Emit(f replay.Frame) error {
	out := jsonFrame{
		Seq:        f.Seq,
		Label:      f.Label,
		Shapes:     f.Shapes,
		Line:       f.Line(),
		SnapshotID: f.SnapshotID,
	}
	if out.Shapes == nil {
		out.Shapes = []string{}
	}
	if !f.Taken.IsZero() {
		taken := f.Taken
		out.Taken = &taken
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(out); err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Seq, err)
	}
	return nil
}
