package iocache

import (
	"sync"

	"github.com/huangsam/llmpick/internal/contract"
)

// CacheStoreManager owns the rank CacheStore.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	rank         contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetRankStore returns the rank CacheStore.
func (mgr *CacheStoreManager) GetRankStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.rank
}
