package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`.
var ErrNotFound = errors.New("document not found")

// Store is an abstraction for persisting encoded annotation documents.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes a document atomically under the given name.
	Put(ctx context.Context, name string, data []byte) error
	// Get returns the document bytes.
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete removes a document. Deleting a missing document is not an
	// error.
	Delete(ctx context.Context, name string) error
	// List returns the document names matching the prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
