// Package storage opens the listing repository for the configured driver.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/thriftfind/internal/config"
	"github.com/kailas-cloud/thriftfind/internal/db"
	dbRedis "github.com/kailas-cloud/thriftfind/internal/db/redis"
	dbSQLite "github.com/kailas-cloud/thriftfind/internal/db/sqlite"
	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
	listingrepo "github.com/kailas-cloud/thriftfind/internal/repository/listing"
)

// Repository is the listing store API shared by the hash and SQL backends.
type Repository interface {
	Save(ctx context.Context, listings ...domlisting.Listing) error
	Get(ctx context.Context, id string) (domlisting.Listing, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int64, error)
	FetchActive(ctx context.Context, limit int) ([]domlisting.Listing, error)
}

var (
	_ Repository = (*listingrepo.Repo)(nil)
	_ Repository = (*listingrepo.SQLRepo)(nil)
)

// Storage bundles a listing repository with the connection behind it.
type Storage struct {
	Listings Repository
	Pinger   db.Pinger
	// KV is nil for SQLite.
	KV    db.KVStore
	close func()
}

// Close releases the underlying connection.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the configured driver and waits until it answers.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.Database.IsSQL() {
		sqlStore, err := dbSQLite.Open(dbSQLite.DefaultConfig(cfg.Database.Path))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &Storage{
			Listings: listingrepo.NewSQL(sqlStore.DB),
			Pinger:   sqlStore,
			close:    func() { _ = sqlStore.Close() },
		}, nil
	}

	// valkey and redis share the rueidis store
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Database.Driver, err)
	}

	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}

	return &Storage{
		Listings: listingrepo.New(store, cfg.Storage.KeyPrefix),
		Pinger:   store,
		KV:       store,
		close:    store.Close,
	}, nil
}
