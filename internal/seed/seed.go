// Package seed bulk-loads listings from JSON fixtures into a repository.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
)

// DefaultBatchSize is the number of listings written per Save call.
const DefaultBatchSize = 100

// Saver persists listings.
type Saver interface {
	Save(ctx context.Context, listings ...domlisting.Listing) error
}

// Loader decodes listing fixtures and writes them in batches.
type Loader struct {
	saver     Saver
	batchSize int
	logger    *zap.Logger
	now       func() time.Time
}

// Result summarizes a load run.
type Result struct {
	Loaded   int
	Active   int
	Batches  int
	Duration time.Duration
}

// NewLoader creates a loader. batchSize <= 0 uses DefaultBatchSize.
func NewLoader(saver Saver, batchSize int, logger *zap.Logger) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{saver: saver, batchSize: batchSize, logger: logger, now: time.Now}
}

// Decode reads a JSON array of listings and fills in missing ids, statuses
// and creation times.
func (l *Loader) Decode(r io.Reader) ([]domlisting.Listing, error) {
	var listings []domlisting.Listing
	if err := json.NewDecoder(r).Decode(&listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	now := l.now()
	seen := make(map[string]struct{}, len(listings))
	for i := range listings {
		item := &listings[i]
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("listing %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = struct{}{}

		if item.Status == "" {
			item.Status = domlisting.StatusActive
		}
		if item.CreatedAt.IsZero() {
			// keep fixture order newest-first when timestamps are absent
			item.CreatedAt = now.Add(-time.Duration(i) * time.Second)
		}
	}
	return listings, nil
}

// Load decodes r and saves every listing.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Result, error) {
	start := time.Now()

	listings, err := l.Decode(r)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for from := 0; from < len(listings); from += l.batchSize {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		to := min(from+l.batchSize, len(listings))
		batch := listings[from:to]

		if err := l.saver.Save(ctx, batch...); err != nil {
			return res, fmt.Errorf("save batch %d: %w", res.Batches, err)
		}
		res.Batches++
		res.Loaded += len(batch)
		for i := range batch {
			if batch[i].IsActive() {
				res.Active++
			}
		}
		l.logger.Debug("Batch saved", zap.Int("batch", res.Batches), zap.Int("size", len(batch)))
	}

	res.Duration = time.Since(start)
	l.logger.Info("Listings loaded",
		zap.Int("loaded", res.Loaded),
		zap.Int("active", res.Active),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}
