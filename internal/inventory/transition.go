// Package inventory implements the in-memory stock store: pure state
// transitions plus a Store that logs, journals, and persists them.
package inventory

import (
	"math"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// DefaultLowStockThreshold is the LowStock threshold used when the caller
// has no configured value.
const DefaultLowStockThreshold = types.DefaultLowStockThreshold

// Add returns stock with qty added to item. The input map is not modified.
// An empty item, a negative qty, or a qty that would overflow the held
// quantity yields ReasonInvalidArgument and the original stock.
func Add(stock types.Stock, item string, qty int) (types.Stock, types.Outcome) {
	if item == "" {
		return stock, types.Fail(types.ReasonInvalidArgument, "item name must not be empty")
	}
	if qty < 0 {
		return stock, types.Fail(types.ReasonInvalidArgument, "quantity cannot be negative for item %s: %d", item, qty)
	}
	if qty > math.MaxInt-stock[item] {
		return stock, types.Fail(types.ReasonInvalidArgument, "quantity overflows stock of item %s: %d + %d", item, stock[item], qty)
	}
	next := stock.Clone()
	next[item] += qty
	return next, types.OK()
}

// Remove returns stock with qty taken from item. An entry whose quantity
// drops to zero or below is deleted. An absent item yields
// ReasonItemNotFound; a qty that is not positive yields
// ReasonInvalidArgument. Presence is checked first.
func Remove(stock types.Stock, item string, qty int) (types.Stock, types.Outcome) {
	if _, ok := stock[item]; !ok {
		return stock, types.Fail(types.ReasonItemNotFound, "attempted to remove non-existent item: %s", item)
	}
	if qty <= 0 {
		return stock, types.Fail(types.ReasonInvalidArgument, "quantity to remove must be positive for item %s: %d", item, qty)
	}
	next := stock.Clone()
	next[item] -= qty
	if next[item] <= 0 {
		delete(next, item)
	}
	return next, types.OK()
}

// LowStock returns the items whose quantity is strictly below threshold,
// sorted by name.
func LowStock(stock types.Stock, threshold int) []string {
	low := []string{}
	for _, item := range stock.Names() {
		if stock[item] < threshold {
			low = append(low, item)
		}
	}
	return low
}
