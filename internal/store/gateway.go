package store

import "time"

// DocumentStore defines the interface for document persistence operations.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type DocumentStore interface {
	InsertOne(collection string, doc Document) error
	InsertCurrent(collection string, doc Document) error
	FindCurrent(collection string) (*Document, error)
	FindByID(collection, id string) (*Document, error)
	FindMany(collection string, filter map[string]string, limit, skip int) ([]Document, error)
	UpdateFields(collection, id string, patch map[string]any, now time.Time) (int64, error)
	Close() error
}

// Verify *DB satisfies DocumentStore at compile time.
var _ DocumentStore = (*DB)(nil)
