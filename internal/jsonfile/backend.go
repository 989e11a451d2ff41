package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// indent is the pretty-print indent of the inventory file.
const indent = "    "

// Backend stores the stock mapping as a single JSON object:
//
//	{
//	    "apple": 7,
//	    "banana": 2
//	}
type Backend struct{}

// NewBackend creates a JSON file backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns types.BackendJSON.
func (b *Backend) Name() string {
	return types.BackendJSON
}

// Load reads and decodes the JSON object at path.
func (b *Backend) Load(path string) (types.Stock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("opening %s: %w", path, types.ErrFileNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w: %v", path, types.ErrIOFailure, err)
	}
	return Decode(data)
}

// Save encodes stock and writes it to path atomically.
func (b *Backend) Save(path string, stock types.Stock) error {
	data, err := Encode(stock)
	if err != nil {
		return fmt.Errorf("encoding %s: %w: %v", path, types.ErrIOFailure, err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing %s: %w: %v", path, types.ErrIOFailure, err)
	}
	return nil
}

// Encode renders stock as a 4-space indented JSON object with a trailing
// newline. Keys are sorted. A nil stock encodes as {}.
func Encode(stock types.Stock) ([]byte, error) {
	if stock == nil {
		stock = types.Stock{}
	}
	data, err := json.MarshalIndent(stock, "", indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON object of item names to non-negative integers. Any
// other shape, including null, arrays, fractional or negative quantities,
// returns ErrMalformedData.
func Decode(data []byte) (types.Stock, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top-level value is not a JSON object", types.ErrMalformedData)
	}
	var stock types.Stock
	if err := json.Unmarshal(trimmed, &stock); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedData, err)
	}
	if err := stock.Validate(); err != nil {
		return nil, fmt.Errorf("%w: empty item name or negative quantity", err)
	}
	return stock, nil
}
