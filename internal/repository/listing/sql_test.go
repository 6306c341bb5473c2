package listing

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/thriftfind/internal/db/sqlite"
	"github.com/kailas-cloud/thriftfind/internal/domain"
	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
)

// testSQLRepo creates a repository over a temporary database.
func testSQLRepo(t *testing.T) (*SQLRepo, *sqlite.Store) {
	t.Helper()

	s, err := sqlite.Open(sqlite.DefaultConfig(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})
	return NewSQL(s.DB), s
}

func TestSQLRepo_SaveAndGet(t *testing.T) {
	r, _ := testSQLRepo(t)
	ctx := context.Background()

	l := mkListing("a", 0, domlisting.StatusActive)
	l.Intents = domlisting.Tags{"gift"}
	require.NoError(t, r.Save(ctx, l))

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, l.Title, got.Title)
	assert.Equal(t, l.Price, got.Price)
	assert.Equal(t, domlisting.Tags{"whimsical"}, got.Moods)
	assert.Equal(t, domlisting.Tags{"gift"}, got.Intents)
	assert.Nil(t, got.Styles)
	assert.True(t, got.CreatedAt.Equal(l.CreatedAt))
}

func TestSQLRepo_GetNotFound(t *testing.T) {
	r, _ := testSQLRepo(t)
	_, err := r.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLRepo_SaveUpserts(t *testing.T) {
	r, _ := testSQLRepo(t)
	ctx := context.Background()

	l := mkListing("a", 0, domlisting.StatusActive)
	require.NoError(t, r.Save(ctx, l))

	l.Title = "Renamed"
	l.Status = "sold"
	require.NoError(t, r.Save(ctx, l))

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "sold", got.Status)

	n, err := r.CountActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLRepo_FetchActive(t *testing.T) {
	r, _ := testSQLRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx,
		mkListing("old", 3*time.Hour, domlisting.StatusActive),
		mkListing("new", 0, domlisting.StatusActive),
		mkListing("sold", time.Hour, "sold"),
		mkListing("mid", 2*time.Hour, domlisting.StatusActive),
	))

	got, err := r.FetchActive(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, idsOf(got))

	got, err = r.FetchActive(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, idsOf(got))
}

func TestSQLRepo_FetchActive_Empty(t *testing.T) {
	r, _ := testSQLRepo(t)
	got, err := r.FetchActive(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLRepo_LegacyTagColumns(t *testing.T) {
	r, s := testSQLRepo(t)
	ctx := context.Background()

	require.NoError(t, s.Create(&sqlite.ListingRow{
		ID:        "legacy",
		Title:     "Patchwork quilt",
		Moods:     "cozy,  warm",
		Styles:    `["boho", "rustic"]`,
		Intents:   "['gift']",
		Status:    domlisting.StatusActive,
		CreatedAt: base,
	}).Error)

	got, err := r.FetchActive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domlisting.Tags{"cozy", "warm"}, got[0].Moods)
	assert.Equal(t, domlisting.Tags{"boho", "rustic"}, got[0].Styles)
	assert.Equal(t, domlisting.Tags{"gift"}, got[0].Intents)
}

func TestSQLRepo_DeleteAndClear(t *testing.T) {
	r, _ := testSQLRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx,
		mkListing("a", 0, domlisting.StatusActive),
		mkListing("b", time.Minute, domlisting.StatusActive),
		mkListing("c", 2*time.Minute, "sold"),
	))

	require.NoError(t, r.Delete(ctx, "a"))
	_, err := r.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := r.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := r.CountActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
