package store

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
)

// NewPostgres connects to PostgreSQL through the pgx stdlib driver and
// ensures the documents table exists.
func NewPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	return openSQL(ctx, "pgx", dsn)
}
