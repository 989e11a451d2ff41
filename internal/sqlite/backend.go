package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// Backend stores the stock mapping in a SQLite database file. Each Save
// replaces every row in a single transaction.
type Backend struct{}

// NewBackend creates a SQLite backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns types.BackendSQLite.
func (b *Backend) Name() string {
	return types.BackendSQLite
}

// Load reads every row of the stock table at path. A file that is not a
// SQLite database, or has no stock table, is malformed.
func (b *Backend) Load(path string) (types.Stock, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("opening %s: %w", path, types.ErrFileNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w: %v", path, types.ErrIOFailure, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening %s: %w: is a directory", path, types.ErrIOFailure)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %v", path, types.ErrIOFailure, err)
	}
	defer db.Close()

	rows, err := db.Query(selectStock)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w: %v", path, types.ErrMalformedData, err)
	}
	defer rows.Close()

	stock := types.Stock{}
	for rows.Next() {
		var item string
		var qty int
		if err := rows.Scan(&item, &qty); err != nil {
			return nil, fmt.Errorf("scanning %s: %w: %v", path, types.ErrMalformedData, err)
		}
		stock[item] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w: %v", path, types.ErrMalformedData, err)
	}
	if err := stock.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return stock, nil
}

// Save replaces the stock table at path with stock, creating the database
// file and table if needed.
func (b *Backend) Save(path string, stock types.Stock) error {
	if err := b.save(path, stock); err != nil {
		return fmt.Errorf("saving %s: %w: %v", path, types.ErrIOFailure, err)
	}
	return nil
}

func (b *Backend) save(path string, stock types.Stock) error {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(createStock); err != nil {
		return fmt.Errorf("creating stock table: %w", err)
	}
	if _, err := tx.Exec(deleteStock); err != nil {
		return fmt.Errorf("clearing stock table: %w", err)
	}

	stmt, err := tx.Prepare(insertStock)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range stock.Names() {
		if _, err := stmt.Exec(item, stock[item]); err != nil {
			return fmt.Errorf("inserting %s: %w", item, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}
