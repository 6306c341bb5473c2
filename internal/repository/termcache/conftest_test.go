package termcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/thriftfind/internal/db"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

type mockExtractor struct {
	groups []term.Group
	err    error
	calls  int
}

func (m *mockExtractor) Extract(_ context.Context, _ string) ([]term.Group, error) {
	m.calls++
	return m.groups, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	data  map[string][]byte
	ttls  map[string]time.Duration
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func newTestCachedExtractor(t *testing.T, inner *mockExtractor) (*CachedExtractor, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
	ce := New(inner, ms, "test:", time.Hour, nil, zap.NewNop())
	return ce, ms
}
