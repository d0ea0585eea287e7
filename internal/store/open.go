package store

import (
	"context"
	"fmt"
)

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverRedis    Driver = "redis"
	DriverMongo    Driver = "mongo"
)

// Options selects and configures a Backend. Only the fields of the chosen
// driver are read.
type Options struct {
	Driver        Driver
	DSN           string // sqlite file path or postgres URL; empty = driver default
	Dir           string // file driver
	RedisAddr     string
	MongoURI      string
	MongoDatabase string
}

const (
	defaultSQLitePath  = "quiz.db"
	defaultPostgresDSN = "postgres://localhost:5432/quiz?sslmode=disable"
)

// DataSource returns DSN, or the default of the selected SQL driver when
// DSN is empty. Other drivers have no data source.
func (o Options) DataSource() string {
	if o.DSN != "" {
		return o.DSN
	}
	switch o.Driver {
	case DriverSQLite, "":
		return defaultSQLitePath
	case DriverPostgres:
		return defaultPostgresDSN
	default:
		return ""
	}
}

// Open returns the Backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Backend, error) {
	b, err := open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", opts.Driver, err)
	}
	return b, nil
}

func open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		s, err := NewFile(opts.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverSQLite, "":
		s, err := NewSQLite(ctx, opts.DataSource())
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		s, err := NewPostgres(ctx, opts.DataSource())
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverRedis:
		s, err := NewRedis(ctx, opts.RedisAddr)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMongo:
		db := opts.MongoDatabase
		if db == "" {
			db = "quiz"
		}
		s, err := NewMongo(ctx, opts.MongoURI, db)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", opts.Driver)
	}
}
