package listing

import (
	"context"
	"strings"

	"github.com/kailas-cloud/thriftfind/internal/db"
)

// memStore is an in-memory implementation of the consumer interface.
type memStore struct {
	hashes map[string]map[string]string
	zsets  map[string]map[string]float64

	hsetMultiErr error
	zrangeErr    error
	hgetMultiErr error
}

func newMemStore() *memStore {
	return &memStore{
		hashes: make(map[string]map[string]string),
		zsets:  make(map[string]map[string]float64),
	}
}

func (m *memStore) HSetMulti(_ context.Context, items []db.HashSetItem) error {
	if m.hsetMultiErr != nil {
		return m.hsetMultiErr
	}
	for _, item := range items {
		h := m.hashes[item.Key]
		if h == nil {
			h = make(map[string]string)
			m.hashes[item.Key] = h
		}
		for k, v := range item.Fields {
			h[k] = v
		}
	}
	return nil
}

func (m *memStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	out := make(map[string]string)
	for k, v := range m.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetMultiErr != nil {
		return nil, m.hgetMultiErr
	}
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i], _ = m.HGetAll(ctx, k)
	}
	return out, nil
}

func (m *memStore) Del(_ context.Context, key string) error {
	delete(m.hashes, key)
	delete(m.zsets, key)
	return nil
}

func (m *memStore) Scan(_ context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.hashes {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *memStore) ZAdd(_ context.Context, key string, score float64, member string) error {
	z := m.zsets[key]
	if z == nil {
		z = make(map[string]float64)
		m.zsets[key] = z
	}
	z[member] = score
	return nil
}

func (m *memStore) ZRem(_ context.Context, key string, members ...string) error {
	for _, mem := range members {
		delete(m.zsets[key], mem)
	}
	return nil
}

func (m *memStore) ZRevRange(_ context.Context, key string, limit int) ([]string, error) {
	if m.zrangeErr != nil {
		return nil, m.zrangeErr
	}
	z := m.zsets[key]
	members := make([]string, 0, len(z))
	for mem := range z {
		members = append(members, mem)
	}
	// insertion sort by score desc, member desc on ties (Redis REV order)
	for i := 1; i < len(members); i++ {
		for j := i; j > 0 && less(z, members[j-1], members[j]); j-- {
			members[j-1], members[j] = members[j], members[j-1]
		}
	}
	if len(members) > limit {
		members = members[:limit]
	}
	return members, nil
}

func less(z map[string]float64, a, b string) bool {
	if z[a] != z[b] {
		return z[a] < z[b]
	}
	return a < b
}

func (m *memStore) ZCard(_ context.Context, key string) (int64, error) {
	return int64(len(m.zsets[key])), nil
}
