package listing

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kailas-cloud/thriftfind/internal/db/sqlite"
	"github.com/kailas-cloud/thriftfind/internal/domain"
	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
)

// SQLRepo stores listings in the SQLite listings table.
type SQLRepo struct {
	db *gorm.DB
}

// NewSQL creates a listing repository over a GORM connection.
func NewSQL(db *gorm.DB) *SQLRepo {
	return &SQLRepo{db: db}
}

// Save upserts listings by ID.
func (r *SQLRepo) Save(ctx context.Context, listings ...domlisting.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	rows := make([]sqlite.ListingRow, len(listings))
	for i := range listings {
		rows[i] = toRow(&listings[i])
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("save listings: %w", err)
	}
	return nil
}

// Get returns a listing by ID.
func (r *SQLRepo) Get(ctx context.Context, id string) (domlisting.Listing, error) {
	var row sqlite.ListingRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domlisting.Listing{}, fmt.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	return fromRow(&row), nil
}

// Delete removes a listing.
func (r *SQLRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&sqlite.ListingRow{}).Error; err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	return nil
}

// Clear removes every listing and returns how many were removed.
func (r *SQLRepo) Clear(ctx context.Context) (int, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&sqlite.ListingRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("clear listings: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

// CountActive returns the number of active listings.
func (r *SQLRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&sqlite.ListingRow{}).
		Where("status = ?", domlisting.StatusActive).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count active listings: %w", err)
	}
	return n, nil
}

// FetchActive implements search.CandidateRepository: up to limit active
// listings, newest first.
func (r *SQLRepo) FetchActive(ctx context.Context, limit int) ([]domlisting.Listing, error) {
	var rows []sqlite.ListingRow
	err := r.db.WithContext(ctx).
		Where("status = ?", domlisting.StatusActive).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch active listings: %w", err)
	}

	out := make([]domlisting.Listing, len(rows))
	for i := range rows {
		out[i] = fromRow(&rows[i])
	}
	return out, nil
}

func toRow(l *domlisting.Listing) sqlite.ListingRow {
	return sqlite.ListingRow{
		ID:                     l.ID,
		SellerID:               l.SellerID,
		Price:                  l.Price,
		Title:                  l.Title,
		Description:            l.Description,
		StoryText:              l.StoryText,
		Category:               l.Category,
		Moods:                  l.Moods.String(),
		Styles:                 l.Styles.String(),
		Intents:                l.Intents.String(),
		Keywords:               l.Keywords.String(),
		AISuggestedKeywords:    l.AISuggestedKeywords.String(),
		AIGeneratedTitle:       l.AIGeneratedTitle,
		AIGeneratedDescription: l.AIGeneratedDescription,
		Status:                 l.Status,
		CreatedAt:              l.CreatedAt.UTC(),
	}
}

func fromRow(row *sqlite.ListingRow) domlisting.Listing {
	return domlisting.Listing{
		ID:                     row.ID,
		SellerID:               row.SellerID,
		Price:                  row.Price,
		Title:                  row.Title,
		Description:            row.Description,
		StoryText:              row.StoryText,
		Category:               row.Category,
		Moods:                  domlisting.ParseTags(row.Moods),
		Styles:                 domlisting.ParseTags(row.Styles),
		Intents:                domlisting.ParseTags(row.Intents),
		Keywords:               domlisting.ParseTags(row.Keywords),
		AISuggestedKeywords:    domlisting.ParseTags(row.AISuggestedKeywords),
		AIGeneratedTitle:       row.AIGeneratedTitle,
		AIGeneratedDescription: row.AIGeneratedDescription,
		Status:                 row.Status,
		CreatedAt:              row.CreatedAt.UTC(),
	}
}
