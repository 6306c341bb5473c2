// Package listing stores marketplace listings and serves the newest-first
// candidate window to search.
package listing

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/thriftfind/internal/db"
	"github.com/kailas-cloud/thriftfind/internal/domain"
	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
)

// store is the consumer interface for listings (ISP).
type store interface {
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRevRange(ctx context.Context, key string, limit int) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
}

// Repo keeps each listing in a hash and indexes active listings in a sorted
// set scored by creation time.
type Repo struct {
	store  store
	prefix string
}

// New creates a listing repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

func (r *Repo) listingKey(id string) string {
	return r.prefix + "listing:" + id
}

func (r *Repo) activeKey() string {
	return r.prefix + "listings:active"
}

// Save writes listings and keeps the active index in sync with their status.
func (r *Repo) Save(ctx context.Context, listings ...domlisting.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, len(listings))
	for i := range listings {
		items[i] = db.HashSetItem{Key: r.listingKey(listings[i].ID), Fields: toHash(&listings[i])}
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("save listings: %w", err)
	}

	for i := range listings {
		l := &listings[i]
		if l.IsActive() {
			if err := r.store.ZAdd(ctx, r.activeKey(), activeScore(l), l.ID); err != nil {
				return fmt.Errorf("index listing %s: %w", l.ID, err)
			}
			continue
		}
		if err := r.store.ZRem(ctx, r.activeKey(), l.ID); err != nil {
			return fmt.Errorf("unindex listing %s: %w", l.ID, err)
		}
	}
	return nil
}

// Get returns a listing by ID.
func (r *Repo) Get(ctx context.Context, id string) (domlisting.Listing, error) {
	m, err := r.store.HGetAll(ctx, r.listingKey(id))
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	if len(m) == 0 {
		return domlisting.Listing{}, fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	return fromHash(id, m), nil
}

// Delete removes a listing and its index entry.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.ZRem(ctx, r.activeKey(), id); err != nil {
		return fmt.Errorf("unindex listing %s: %w", id, err)
	}
	if err := r.store.Del(ctx, r.listingKey(id)); err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	return nil
}

// Clear removes every listing under the prefix and returns how many were removed.
func (r *Repo) Clear(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, r.listingKey("*"))
	if err != nil {
		return 0, fmt.Errorf("scan listings: %w", err)
	}
	for _, key := range keys {
		if err := r.store.Del(ctx, key); err != nil {
			return 0, fmt.Errorf("delete %s: %w", key, err)
		}
	}
	if err := r.store.Del(ctx, r.activeKey()); err != nil {
		return 0, fmt.Errorf("delete active index: %w", err)
	}
	return len(keys), nil
}

// CountActive returns the size of the active index.
func (r *Repo) CountActive(ctx context.Context) (int64, error) {
	n, err := r.store.ZCard(ctx, r.activeKey())
	if err != nil {
		return 0, fmt.Errorf("count active listings: %w", err)
	}
	return n, nil
}

// FetchActive implements search.CandidateRepository: up to limit active
// listings, newest first. Index entries whose hash is gone or whose status
// changed behind the index are skipped.
func (r *Repo) FetchActive(ctx context.Context, limit int) ([]domlisting.Listing, error) {
	ids, err := r.store.ZRevRange(ctx, r.activeKey(), limit)
	if err != nil {
		return nil, fmt.Errorf("read active index: %w", err)
	}
	if len(ids) == 0 {
		return []domlisting.Listing{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.listingKey(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load active listings: %w", err)
	}

	out := make([]domlisting.Listing, 0, len(hashes))
	for i, m := range hashes {
		if len(m) == 0 {
			continue
		}
		l := fromHash(ids[i], m)
		if !l.IsActive() {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
