// Shared helpers for pantry CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/pantry/internal/inventory"
	"github.com/mesh-intelligence/pantry/internal/jsonfile"
	"github.com/mesh-intelligence/pantry/internal/snapshot"
	"github.com/mesh-intelligence/pantry/internal/sqlite"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// itemJSON is the --json rendering of a single item.
type itemJSON struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// newBackend returns the persistence backend selected by configuration.
func (a *app) newBackend() types.Backend {
	if a.cfg.Backend == types.BackendSQLite {
		return sqlite.NewBackend()
	}
	return jsonfile.NewBackend()
}

// newStore creates an empty store wired to the configured backend, the
// data directory journal, and the CLI logger.
func (a *app) newStore() *inventory.Store {
	return inventory.New(
		inventory.WithBackend(a.newBackend()),
		inventory.WithJournal(jsonfile.NewJournalFile(a.layout.JournalPath())),
		inventory.WithLogger(a.logger),
	)
}

// openStore creates the data directory if needed and loads the inventory
// file. A missing file yields an empty store. A corrupt or unreadable file
// is reported as a system error so that a later save cannot overwrite it.
func (a *app) openStore() (*inventory.Store, error) {
	if err := a.layout.Ensure(); err != nil {
		return nil, sysError(fmt.Errorf("create data dir: %w", err))
	}
	s := a.newStore()
	out := s.Load(a.layout.InventoryPath())
	switch out.Reason {
	case types.ReasonOK, types.ReasonFileNotFound:
		return s, nil
	default:
		return nil, sysError(out.Err())
	}
}

// commit saves the store to the inventory file.
func (a *app) commit(s *inventory.Store) error {
	return outcomeError(s.Save(a.layout.InventoryPath()))
}

// shelf returns the snapshot shelf of the data directory.
func (a *app) shelf() *snapshot.Shelf {
	return snapshot.New(a.layout.SnapshotDir())
}

// parseQty parses a quantity argument. Range checks belong to the store.
func parseQty(arg string) (int, error) {
	qty, err := strconv.Atoi(arg)
	if err != nil {
		return 0, userError(fmt.Errorf("invalid quantity %q: must be an integer", arg))
	}
	return qty, nil
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printItem writes one item in text or JSON form.
func (a *app) printItem(w io.Writer, item string, qty int) error {
	if a.flags.jsonMode {
		return printJSON(w, itemJSON{Item: item, Quantity: qty})
	}
	_, err := fmt.Fprintf(w, "%s: %d\n", item, qty)
	return err
}

var _ inventory.Journal = (*jsonfile.JournalFile)(nil)
