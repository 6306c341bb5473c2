package thriftfind

import (
	"context"
	"errors"
	"fmt"
	"time"

	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/storage"
)

var errMissingID = errors.New("listing id is required")

// ListingService manages stored listings.
type ListingService struct {
	repo storage.Repository
	obs  *observer
}

// Upsert creates or replaces listings. Listings need an ID; a zero
// CreatedAt is stamped with the current time.
func (s *ListingService) Upsert(ctx context.Context, listings ...Listing) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.upsert", start, err) }()

	if len(listings) == 0 {
		return nil
	}

	now := time.Now()
	items := make([]domlisting.Listing, 0, len(listings))
	for i := range listings {
		if listings[i].ID == "" {
			return fmt.Errorf("upsert listing %d: %w", i, errMissingID)
		}
		item := toDomainListing(&listings[i])
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		items = append(items, item)
	}

	if err = s.repo.Save(ctx, items...); err != nil {
		return fmt.Errorf("upsert listings: %w", err)
	}
	return nil
}

// Get returns a listing by ID, or ErrNotFound.
func (s *ListingService) Get(ctx context.Context, id string) (_ Listing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.get", start, err) }()

	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	return fromDomainListing(&l), nil
}

// Delete removes a listing. Deleting a missing listing is not an error.
func (s *ListingService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.delete", start, err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	return nil
}

// Clear removes every listing and reports how many were removed.
func (s *ListingService) Clear(ctx context.Context) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.clear", start, err) }()

	n, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear listings: %w", err)
	}
	return n, nil
}

// CountActive returns the number of searchable listings.
func (s *ListingService) CountActive(ctx context.Context) (_ int64, err error) {
	start := time.Now()
	defer func() { s.obs.observe("listing.count", start, err) }()

	n, err := s.repo.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}
