// Package contract provides interfaces and shared utilities for the llmpick CLI's internal architecture.
package contract

import (
	"github.com/huangsam/llmpick/schema"
)

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetRankStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Prune(before int64) (int64, error)
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
