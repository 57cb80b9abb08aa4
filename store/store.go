// Package store persists schemaless entity documents keyed by kind and a
// store-assigned integer id. Every record carries a version; writes are
// guarded by it so read-modify-write cycles detect concurrent changes.
package store

import (
	"context"
	"errors"
	"strconv"
)

// Kind namespaces identifiers in the store
type Kind string

// Entity kinds
const (
	KindUser    Kind = "User"
	KindArt     Kind = "Art"
	KindGallery Kind = "Gallery"
)

var (
	// ErrNotFound is returned when no record exists for a kind and id
	ErrNotFound = errors.New("store: record not found")

	// ErrConflict is returned by Commit when a record changed since it was read
	ErrConflict = errors.New("store: version conflict")
)

// Record is a stored document. Version is 1 after Insert and grows by one on
// every successful Commit.
type Record struct {
	Kind    Kind
	ID      int64
	Version int64
	Data    []byte
}

// Store is the document store used by every handler. Implementations must be
// safe for concurrent use.
type Store interface {
	// Insert stores data under a fresh id of the given kind.
	Insert(ctx context.Context, kind Kind, data []byte) (*Record, error)

	// Get loads one record or returns ErrNotFound.
	Get(ctx context.Context, kind Kind, id int64) (*Record, error)

	// List returns records of kind in creation order, skipping offset of them.
	// A negative limit returns everything after offset.
	List(ctx context.Context, kind Kind, offset int, limit int) ([]*Record, error)

	// Commit writes every record as one unit where the backend allows it.
	// Each record's Version must equal the stored version, otherwise nothing
	// is written and ErrConflict is returned. On success the Versions of recs
	// are advanced in place.
	Commit(ctx context.Context, recs ...*Record) error

	// Delete removes a record or returns ErrNotFound.
	Delete(ctx context.Context, kind Kind, id int64) error

	Close() error
}

func key(kind Kind, id int64) string {
	return string(kind) + ":" + strconv.FormatInt(id, 10)
}

// window returns the [start, end) bounds of offset/limit over n items.
func window(n int, offset int, limit int) (int, int) {
	if offset > n {
		offset = n
	}
	end := n
	if limit >= 0 && limit < n-offset {
		end = offset + limit
	}
	return offset, end
}
