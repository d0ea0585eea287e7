package store

import (
	"context"
	"errors"

	"github.com/remaimber-it/quiz/internal/domain/record"
)

var (
	ErrNotFound = errors.New("not found")
)

// RecordsKey is the document key the session history is kept under.
const RecordsKey = "quizRecords"

// Backend persists opaque documents under string keys. Put replaces the
// whole document; Get returns ErrNotFound for a key that was never written
// or was deleted.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, doc []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RecordStore holds the ordered history of completed sessions.
type RecordStore interface {
	// Load returns every record in insertion order, or an empty slice.
	Load(ctx context.Context) ([]record.Record, error)
	// Append adds rec at the end of the history.
	Append(ctx context.Context, rec record.Record) error
	// Clear removes all records.
	Clear(ctx context.Context) error
}
