// Package db opens the document store named by the configured URI and hands
// back its repositories together with the handle's lifecycle hooks.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/baharkarakas/exercise-tracker/internal/repository"
	"github.com/baharkarakas/exercise-tracker/internal/repository/memory"
	"github.com/baharkarakas/exercise-tracker/internal/repository/mongodb"
	"github.com/baharkarakas/exercise-tracker/internal/repository/postgres"
)

type Driver string

const (
	DriverMongo    Driver = "mongodb"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

// Options configures Open. Database overrides the Mongo database name; Migrate
// creates tables or indexes before the store is handed out.
type Options struct {
	URI      string
	Database string
	Migrate  bool
}

type Store struct {
	Driver Driver
	Repos  repository.Repositories

	ping  func(context.Context) error
	close func(context.Context) error
}

func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

func (s *Store) Close(ctx context.Context) error { return s.close(ctx) }

func DriverFor(uri string) (Driver, error) {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok {
		return "", fmt.Errorf("store uri %q has no scheme", uri)
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "memory":
		return DriverMemory, nil
	}
	return "", fmt.Errorf("unsupported store scheme %q", scheme)
}

// Open connects before returning; callers must Close the store on shutdown.
func Open(ctx context.Context, opts Options) (*Store, error) {
	driver, err := DriverFor(opts.URI)
	if err != nil {
		return nil, err
	}
	switch driver {
	case DriverMongo:
		return openMongo(ctx, opts)
	case DriverPostgres:
		return openPostgres(ctx, opts)
	default:
		return OpenMemory(), nil
	}
}

func OpenMemory() *Store {
	return &Store{
		Driver: DriverMemory,
		Repos:  memory.NewRepositories(memory.New()),
		ping:   func(context.Context) error { return nil },
		close:  func(context.Context) error { return nil },
	}
}

func openMongo(ctx context.Context, opts Options) (*Store, error) {
	client, err := NewMongoClient(ctx, opts.URI)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	name := opts.Database
	if name == "" {
		name = MongoDatabaseName(opts.URI)
	}
	database := client.Database(name)
	if opts.Migrate {
		if err := mongodb.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
	}
	slog.Info("store connected", "driver", DriverMongo, "database", name)
	return &Store{
		Driver: DriverMongo,
		Repos:  mongodb.NewRepositories(database),
		ping:   func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close:  client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, opts Options) (*Store, error) {
	pool, err := NewPool(ctx, opts.URI)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if opts.Migrate {
		if err := RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}
	slog.Info("store connected", "driver", DriverPostgres)
	return &Store{
		Driver: DriverPostgres,
		Repos:  postgres.NewRepositories(pool),
		ping:   pool.Ping,
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}
