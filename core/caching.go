package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/llmpick/core/algo"
	"github.com/huangsam/llmpick/internal/catalog"
	"github.com/huangsam/llmpick/internal/contract"
	"github.com/huangsam/llmpick/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// maxCacheAge is how long a stored ranking stays valid.
const maxCacheAge = 7 * 24 * time.Hour

// cachedRank returns the ranking for a selection, reading and writing the rank store when one exists.
func cachedRank(ctx context.Context, cat *catalog.Catalog, sel schema.SelectionState, mgr contract.CacheManager) (schema.RankedResult, error) {
	if err := ctx.Err(); err != nil {
		return schema.RankedResult{}, err
	}

	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetRankStore()
	}
	if store == nil {
		// Fallback to direct computation
		return algo.Rank(cat.Models(), sel)
	}

	key := generateCacheKey(cat, sel)

	// Check for cache hit
	if result, ok := checkCacheHit(store, key); ok {
		return result, nil
	}

	// Cache miss: compute and store
	return computeAndStore(cat, sel, store, key)
}

// checkCacheHit attempts to retrieve and validate a cached result
func checkCacheHit(store contract.CacheStore, key string) (schema.RankedResult, bool) {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return schema.RankedResult{}, false // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= maxCacheAge {
			var result schema.RankedResult
			if err := json.Unmarshal(data, &result); err == nil {
				return result, true // Cache hit
			}
		}
	}

	return schema.RankedResult{}, false // Cache miss (stale or version mismatch)
}

// computeAndStore computes the result and stores it in cache
func computeAndStore(cat *catalog.Catalog, sel schema.SelectionState, store contract.CacheStore, key string) (schema.RankedResult, error) {
	result, err := algo.Rank(cat.Models(), sel)
	if err != nil {
		return schema.RankedResult{}, err
	}

	// Store in cache
	if data, err := json.Marshal(result); err == nil {
		if err := store.Set(key, data, currentCacheVersion, time.Now().Unix()); err != nil {
			contract.LogWarn("Cannot store ranking in cache", err)
		}
	}

	return result, nil
}

// generateCacheKey creates a unique key from the catalog content and the selection.
func generateCacheKey(cat *catalog.Catalog, sel schema.SelectionState) string {
	selJSON, err := json.Marshal(sel)
	if err != nil {
		selJSON = []byte(fmt.Sprintf("%+v", sel))
	}
	key := fmt.Sprintf("%s:%s", cat.Fingerprint(), selJSON)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
