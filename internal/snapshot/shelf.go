// Package snapshot keeps named copies of the stock mapping on disk, one
// file per snapshot, using diskv.
package snapshot

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"github.com/mesh-intelligence/pantry/internal/jsonfile"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Shelf is an on-disk set of named stock snapshots. Each snapshot is stored
// in the same JSON object format as the inventory file.
type Shelf struct {
	diskv *diskv.Diskv
}

// New creates a shelf rooted at dir. The directory is created on the
// first Put.
func New(dir string) *Shelf {
	flatTransform := func(s string) []string { return []string{} }
	return &Shelf{
		diskv: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024,
		}),
	}
}

// Put stores stock under name, replacing any existing snapshot.
func (s *Shelf) Put(name string, stock types.Stock) error {
	if err := checkName(name); err != nil {
		return err
	}
	raw, err := jsonfile.Encode(stock)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", name, err)
	}
	if err := s.diskv.Write(name, raw); err != nil {
		return fmt.Errorf("write snapshot %s: %w", name, err)
	}
	return nil
}

// Get returns the snapshot stored under name.
func (s *Shelf) Get(name string) (types.Stock, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if !s.diskv.Has(name) {
		return nil, fmt.Errorf("%w: %s", types.ErrSnapshotNotFound, name)
	}
	raw, err := s.diskv.Read(name)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", name, err)
	}
	stock, err := jsonfile.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	return stock, nil
}

// Delete removes the snapshot stored under name.
func (s *Shelf) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if !s.diskv.Has(name) {
		return fmt.Errorf("%w: %s", types.ErrSnapshotNotFound, name)
	}
	return s.diskv.Erase(name)
}

// List returns every snapshot name, sorted.
func (s *Shelf) List() []string {
	var names []string
	for key := range s.diskv.Keys(nil) {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

func checkName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", types.ErrInvalidSnapshotName, name)
	}
	return nil
}
