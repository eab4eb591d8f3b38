package kv

import (
	"context"

	"github.com/patrickmn/go-cache"
)

var _ Backend = (*Memory)(nil)

// Memory keeps everything in process memory. Entries never expire and no
// janitor goroutine is started.
type Memory struct {
	items *cache.Cache
}

func NewMemory() *Memory {
	return &Memory{
		items: cache.New(cache.NoExpiration, 0),
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	v, ok := m.items.Get(key)
	if !ok {
		return "", ErrNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", ErrNotFound
	}
	return s, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.items.Set(key, value, cache.NoExpiration)
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.items.Delete(k)
	}
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	return m.items.ItemCount()
}

func (m *Memory) Close() error {
	m.items.Flush()
	return nil
}
