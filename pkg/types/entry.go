package types

import (
	"fmt"
	"time"
)

// Journal actions.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Entry is one timestamped record of a successful stock change.
type Entry struct {
	EntryID  string    `json:"entry_id"` // UUID v7
	Time     time.Time `json:"time"`
	Action   string    `json:"action"` // ActionAdd or ActionRemove
	Item     string    `json:"item"`
	Quantity int       `json:"quantity"`
}

// String renders the entry the way the history listing prints it, for
// example "2026-10-18 09:30:00: Added 10 of apple".
func (e Entry) String() string {
	verb := "Added"
	if e.Action == ActionRemove {
		verb = "Removed"
	}
	return fmt.Sprintf("%s: %s %d of %s", e.Time.Format(time.DateTime), verb, e.Quantity, e.Item)
}
