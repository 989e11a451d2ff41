package inventory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Store owns the stock mapping and applies transitions to it. Every
// operation reports its result as a types.Outcome and logs failures; none
// of them panic or return Go errors.
//
// A Store is not safe for concurrent use.
type Store struct {
	stock   types.Stock
	backend types.Backend
	journal Journal
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithBackend sets the persistence backend used by Save and Load.
func WithBackend(b types.Backend) Option {
	return func(s *Store) { s.backend = b }
}

// WithJournal sets the journal that receives an entry per successful change.
func WithJournal(j Journal) Option {
	return func(s *Store) { s.journal = j }
}

// WithLogger sets the logger. A nil logger leaves slog.Default in place.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source for journal entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store. Without WithBackend, Save and Load report
// ReasonIOFailure.
func New(opts ...Option) *Store {
	s := &Store{
		stock:  types.Stock{},
		logger: slog.Default(),
		now:    time.Now,
		newID:  generateUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add increments item by qty, creating the entry if absent.
func (s *Store) Add(item string, qty int) types.Outcome {
	next, out := Add(s.stock, item, qty)
	if !out.Ok() {
		s.logger.Warn("invalid add", "item", item, "qty", qty, "reason", out.Reason.String())
		return out
	}
	s.stock = next
	s.record(types.ActionAdd, item, qty)
	s.logger.Info(fmt.Sprintf("Added %d of %s", qty, item))
	return out
}

// Remove decrements item by qty and deletes the entry once it reaches zero.
func (s *Store) Remove(item string, qty int) types.Outcome {
	next, out := Remove(s.stock, item, qty)
	if !out.Ok() {
		s.logger.Warn("invalid remove", "item", item, "qty", qty, "reason", out.Reason.String())
		return out
	}
	s.stock = next
	s.record(types.ActionRemove, item, qty)
	if _, ok := next[item]; !ok {
		s.logger.Info("Removed item completely: " + item)
	} else {
		s.logger.Info(fmt.Sprintf("Removed %d of %s", qty, item))
	}
	return out
}

// Quantity returns the quantity held for item, or 0 if absent.
func (s *Store) Quantity(item string) int {
	return s.stock[item]
}

// Has reports whether item has an entry.
func (s *Store) Has(item string) bool {
	_, ok := s.stock[item]
	return ok
}

// LowStock returns items whose quantity is strictly below threshold, sorted
// by name.
func (s *Store) LowStock(threshold int) []string {
	low := LowStock(s.stock, threshold)
	s.logger.Info("checked low-stock items", "threshold", threshold, "count", len(low))
	return low
}

// Items returns a copy of the stock mapping.
func (s *Store) Items() types.Stock {
	return s.stock.Clone()
}

// Len returns the number of items held.
func (s *Store) Len() int {
	return len(s.stock)
}

// Replace swaps in a copy of stock wholesale.
func (s *Store) Replace(stock types.Stock) {
	s.stock = stock.Clone()
}

// Save writes the whole mapping to path. An empty path means
// types.DefaultFile. In-memory state is never changed.
func (s *Store) Save(path string) types.Outcome {
	if path == "" {
		path = types.DefaultFile
	}
	if s.backend == nil {
		out := types.Fail(types.ReasonIOFailure, "no backend configured")
		s.logger.Error("error saving inventory", "path", path, "err", out.Err())
		return out
	}
	if err := s.backend.Save(path, s.stock); err != nil {
		out := types.FromError(fmt.Errorf("saving %s: %w", path, err))
		s.logger.Error("error saving inventory", "path", path, "err", err)
		return out
	}
	s.logger.Info("saved inventory data", "path", path, "backend", s.backend.Name())
	return types.OK()
}

// Load replaces the whole mapping with the contents of path. Any failure
// leaves the store empty: a missing file logs a warning, anything else
// logs an error.
func (s *Store) Load(path string) types.Outcome {
	if path == "" {
		path = types.DefaultFile
	}
	if s.backend == nil {
		s.stock = types.Stock{}
		out := types.Fail(types.ReasonIOFailure, "no backend configured")
		s.logger.Error("error loading inventory", "path", path, "err", out.Err())
		return out
	}
	loaded, err := s.backend.Load(path)
	if err != nil {
		s.stock = types.Stock{}
		out := types.FromError(fmt.Errorf("loading %s: %w", path, err))
		if errors.Is(err, types.ErrFileNotFound) {
			s.logger.Warn("file not found, starting with empty inventory", "path", path)
		} else {
			s.logger.Error("error loading inventory, starting with empty inventory", "path", path, "err", err)
		}
		return out
	}
	s.stock = loaded.Clone()
	s.logger.Info("loaded inventory data", "path", path, "backend", s.backend.Name(), "items", len(s.stock))
	return types.OK()
}

// Report writes a human-readable listing of every item, one per line,
// sorted by name.
func (s *Store) Report(w io.Writer) types.Outcome {
	if _, err := fmt.Fprintln(w, "Items Report"); err != nil {
		return s.reportFailed(err)
	}
	for _, item := range s.stock.Names() {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", item, s.stock[item]); err != nil {
			return s.reportFailed(err)
		}
	}
	return types.OK()
}

func (s *Store) reportFailed(err error) types.Outcome {
	s.logger.Error("error writing report", "err", err)
	return types.FromError(fmt.Errorf("writing report: %w", err))
}

// record appends a journal entry. Journal failures are logged and do not
// undo the change.
func (s *Store) record(action, item string, qty int) {
	if s.journal == nil {
		return
	}
	entry := types.Entry{
		EntryID:  s.newID(),
		Time:     s.now(),
		Action:   action,
		Item:     item,
		Quantity: qty,
	}
	if err := s.journal.Append(entry); err != nil {
		s.logger.Warn("error appending journal entry", "item", item, "err", err)
	}
}
