package inventory

import (
	"github.com/google/uuid"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Journal receives an entry for every successful stock change.
type Journal interface {
	Append(entry types.Entry) error
}

// MemoryJournal keeps entries in a slice owned by the caller.
type MemoryJournal struct {
	entries []types.Entry
}

// Append records entry.
func (j *MemoryJournal) Append(entry types.Entry) error {
	j.entries = append(j.entries, entry)
	return nil
}

// Entries returns the recorded entries in append order.
func (j *MemoryJournal) Entries() []types.Entry {
	out := make([]types.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Lines renders every entry with Entry.String.
func (j *MemoryJournal) Lines() []string {
	lines := make([]string, len(j.entries))
	for i, e := range j.entries {
		lines[i] = e.String()
	}
	return lines
}

// generateUUID generates a new UUID v7 for journal entry IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
