package thriftfind

import (
	"context"
	"errors"

	"github.com/kailas-cloud/thriftfind/internal/domain"
	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/search/result"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	healthuc "github.com/kailas-cloud/thriftfind/internal/usecase/health"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn  func(ctx context.Context, query string, limit int) (result.Result, error)
	byTermsFn func(ctx context.Context, raw []term.Group, limit int, label string) (result.Result, error)
}

func (m *mockSearchUC) Search(ctx context.Context, query string, limit int) (result.Result, error) {
	return m.searchFn(ctx, query, limit)
}

func (m *mockSearchUC) SearchByTerms(
	ctx context.Context, raw []term.Group, limit int, label string,
) (result.Result, error) {
	return m.byTermsFn(ctx, raw, limit, label)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }

// --- storage.Repository fake ---

type memRepo struct {
	items   map[string]domlisting.Listing
	saveErr error
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[string]domlisting.Listing)}
}

func (r *memRepo) Save(_ context.Context, listings ...domlisting.Listing) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, l := range listings {
		r.items[l.ID] = l
	}
	return nil
}

func (r *memRepo) Get(_ context.Context, id string) (domlisting.Listing, error) {
	l, ok := r.items[id]
	if !ok {
		return domlisting.Listing{}, domain.ErrNotFound
	}
	return l, nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memRepo) Clear(context.Context) (int, error) {
	n := len(r.items)
	clear(r.items)
	return n, nil
}

func (r *memRepo) CountActive(context.Context) (int64, error) {
	var n int64
	for _, l := range r.items {
		if l.IsActive() {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) FetchActive(context.Context, int) ([]domlisting.Listing, error) {
	return nil, errors.New("not used")
}

// --- pinger mock ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

// --- helpers ---

func testClient(searchSvc searchUseCase, repo *memRepo) *Client {
	return &Client{
		listings:  repo,
		pinger:    &mockPinger{},
		searchSvc: searchSvc,
	}
}
