package kv

import (
	"context"
	"sync"
)

// MemoryClient keeps keys in process memory. It backs local runs without Redis and tests.
type MemoryClient struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{data: make(map[string]string)}
}

func (m *MemoryClient) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryClient) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryClient) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return ErrKeyNotFound
	}
	delete(m.data, key)
	return nil
}

func (m *MemoryClient) Ping(context.Context) error { return nil }

func (m *MemoryClient) Close() error { return nil }
