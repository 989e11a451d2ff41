package jsonfile

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// JournalFile appends journal entries to a JSONL file, one entry per line.
type JournalFile struct {
	path string
}

// NewJournalFile returns a journal writing to path. The file is created on
// the first Append.
func NewJournalFile(path string) *JournalFile {
	return &JournalFile{path: path}
}

// Path returns the journal file path.
func (j *JournalFile) Path() string {
	return j.path
}

// Append writes entry as one JSON line.
func (j *JournalFile) Append(entry types.Entry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", j.path, err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", j.path, err)
	}
	return f.Close()
}

// Entries reads every entry in append order. A missing file yields no
// entries. Blank and malformed lines are skipped.
func (j *JournalFile) Entries() ([]types.Entry, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", j.path, err)
	}
	defer f.Close()

	var entries []types.Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e types.Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", j.path, err)
	}
	return entries, nil
}
