package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/remaimber-it/quiz/internal/domain/record"
)

// DocumentStore keeps the whole history as one JSON array in a Backend.
// Every mutation rewrites the full document. It assumes a single writer.
type DocumentStore struct {
	backend Backend
	key     string
	logger  *slog.Logger
}

// Compile-time check: *DocumentStore satisfies the RecordStore interface.
var _ RecordStore = (*DocumentStore)(nil)

// NewRecordStore creates a DocumentStore using RecordsKey.
func NewRecordStore(b Backend, logger *slog.Logger) *DocumentStore {
	return &DocumentStore{
		backend: b,
		key:     RecordsKey,
		logger:  logger,
	}
}

func (s *DocumentStore) Load(ctx context.Context) ([]record.Record, error) {
	doc, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return []record.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	records := []record.Record{}
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if records == nil {
		// a stored "null"
		records = []record.Record{}
	}
	return records, nil
}

func (s *DocumentStore) Append(ctx context.Context, rec record.Record) error {
	history, err := s.Load(ctx)
	if err != nil {
		return err
	}
	history = record.Append(history, rec)

	doc, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := s.backend.Put(ctx, s.key, doc); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	s.logger.Debug("record appended", "record_id", rec.ID, "records", len(history))
	return nil
}

func (s *DocumentStore) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear records: %w", err)
	}

	s.logger.Info("records cleared")
	return nil
}
