package types

// Backend persists a whole Stock snapshot at a path.
type Backend interface {
	// Name returns the backend name used in configuration.
	Name() string

	// Load reads the snapshot at path. It returns ErrFileNotFound when the
	// path does not exist and ErrMalformedData when the content cannot be
	// decoded into a valid Stock. Partial results are never returned.
	Load(path string) (Stock, error)

	// Save replaces the snapshot at path with stock. Failures wrap
	// ErrIOFailure.
	Save(path string, stock Stock) error
}
