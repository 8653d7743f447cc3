// Package services provides application services layered on the core:
// currently the in-memory submission history archive.
package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/core/graph"
	"github.com/cpprhtn/Polaris/pkg/serialization"
)

// DefaultHistoryCapacity bounds the archive when no capacity is given.
const DefaultHistoryCapacity = 32

// Entry is one archived submission: the analyzer verdict plus the
// compressed snapshot blob it was computed from.
type Entry struct {
	ID          string
	SubmittedAt time.Time
	Result      dto.ParseResult
	blob        []byte
}

// History keeps a bounded, in-memory archive of submitted snapshots for
// diagnostics. Blobs are msgpack-encoded and zstd-compressed; nothing is
// written to disk.
type History struct {
	mu         sync.Mutex
	serializer *serialization.Serializer
	entries    []Entry
	capacity   int
}

// NewHistory creates an archive retaining at most capacity entries;
// values below one fall back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		serializer: serialization.New(serialization.Config{
			Codec:       &serialization.MsgpackCodec{},
			Compression: serialization.CompressionZstd,
		}),
		capacity: capacity,
	}
}

// Record archives one completed submission, evicting the oldest entry
// once the capacity is reached.
func (h *History) Record(snap graph.Snapshot, result dto.ParseResult) error {
	blob, err := h.serializer.Serialize(snap)
	if err != nil {
		return fmt.Errorf("archive snapshot: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, Entry{
		ID:          uuid.NewString(),
		SubmittedAt: time.Now(),
		Result:      result,
		blob:        blob,
	})
	if len(h.entries) > h.capacity {
		h.entries = h.entries[len(h.entries)-h.capacity:]
	}
	return nil
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns the retained entries, oldest first, without blobs.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		e.blob = nil
		out[i] = e
	}
	return out
}

// Snapshot restores the archived snapshot for the given entry id.
func (h *History) Snapshot(id string) (graph.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.entries {
		if e.ID != id {
			continue
		}
		var snap graph.Snapshot
		if err := h.serializer.Deserialize(e.blob, &snap); err != nil {
			return graph.Snapshot{}, fmt.Errorf("restore snapshot %s: %w", id, err)
		}
		return snap, nil
	}
	return graph.Snapshot{}, graph.ErrSnapshotNotFound
}
