// Package store persists recorded snapshot history as JSON.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/bethropolis/easel/internal/logger"
	"github.com/bethropolis/easel/internal/snapshot"
)

// FormatVersion is written into every history file.
const FormatVersion = 1

// ErrUnsupportedVersion is returned for files written by an unknown format version.
var ErrUnsupportedVersion = errors.New("store: unsupported history file version")

type fileRecord struct {
	Version   int              `json:"version"`
	Snapshots []snapshotRecord `json:"snapshots"`
}

type snapshotRecord struct {
	ID     string    `json:"id"`
	Taken  time.Time `json:"taken"`
	Shapes []string  `json:"shapes"`
}

// Save writes snaps to path atomically through a temporary file in the same directory.
func Save(path string, snaps []snapshot.Snapshot) error {
	rec := fileRecord{
		Version:   FormatVersion,
		Snapshots: make([]snapshotRecord, 0, len(snaps)),
	}
	for _, s := range snaps {
		shapes := s.Contents()
		if shapes == nil {
			shapes = []string{}
		}
		rec.Snapshots = append(rec.Snapshots, snapshotRecord{
			ID:     s.ID().String(),
			Taken:  s.Taken(),
			Shapes: shapes,
		})
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir '%s': %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close history: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace history file '%s': %w", path, err)
	}

	logger.DebugTagf("store", "Store: Saved %d snapshot(s) to %s", len(snaps), path)
	return nil
}

// Load reads snapshots from path, oldest first. A missing file yields nil, nil.
func Load(path string) ([]snapshot.Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.DebugTagf("store", "Store: No history file at %s", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file '%s': %w", path, err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode history file '%s': %w", path, err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, rec.Version)
	}

	snaps := make([]snapshot.Snapshot, 0, len(rec.Snapshots))
	for i, r := range rec.Snapshots {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("snapshot %d: invalid id %q: %w", i, r.ID, err)
		}
		snaps = append(snaps, snapshot.Restore(id, r.Taken, r.Shapes))
	}
	logger.DebugTagf("store", "Store: Loaded %d snapshot(s) from %s", len(snaps), path)
	return snaps, nil
}
