// Package sqlite implements a SQLite persistence backend for the Pantry
// inventory store. A snapshot file holds one table of item quantities.
package sqlite

// Schema DDL and statements for the stock table.
const (
	createStock = `CREATE TABLE IF NOT EXISTS stock (
    item TEXT PRIMARY KEY CHECK (item <> ''),
    quantity INTEGER NOT NULL CHECK (quantity >= 0)
);`

	deleteStock = `DELETE FROM stock;`

	insertStock = `INSERT INTO stock (item, quantity) VALUES (?, ?);`

	selectStock = `SELECT item, quantity FROM stock ORDER BY item;`
)
