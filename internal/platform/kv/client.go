package kv

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Client is the subset of Redis used by the stores. Get returns ErrKeyNotFound for missing keys.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
