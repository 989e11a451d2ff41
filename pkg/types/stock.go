package types

import "sort"

// Stock maps item names to quantities. A present entry never holds a
// negative quantity.
type Stock map[string]int

// Clone returns an independent copy. A nil Stock clones to an empty map.
func (s Stock) Clone() Stock {
	out := make(Stock, len(s))
	for item, qty := range s {
		out[item] = qty
	}
	return out
}

// Names returns the item names sorted lexically.
func (s Stock) Names() []string {
	names := make([]string, 0, len(s))
	for item := range s {
		names = append(names, item)
	}
	sort.Strings(names)
	return names
}

// Validate checks every entry of a decoded Stock. It returns ErrMalformedData
// for an empty item name or a negative quantity.
func (s Stock) Validate() error {
	for item, qty := range s {
		if item == "" {
			return ErrMalformedData
		}
		if qty < 0 {
			return ErrMalformedData
		}
	}
	return nil
}
