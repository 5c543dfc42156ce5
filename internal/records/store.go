package records

import "context"

// Store defines persistence operations for resume records.
type Store interface {
	// Save writes the record as a complete snapshot under the name's
	// normalized key, overwriting any existing record at that key.
	Save(ctx context.Context, name Name, rec Record) error
	// Load returns the record saved under the name's key, or ErrNotFound
	// when it is missing or unreadable.
	Load(ctx context.Context, name Name) (Record, error)
	// List returns the display names of all saved records. Order is
	// unspecified.
	List(ctx context.Context) ([]Name, error)
}
