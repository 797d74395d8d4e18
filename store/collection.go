package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/choco-radar/site/cache"
)

// The store collection is small (citywide store count), so the whole
// joined result set is cached as one entry and fully refetched on
// every change event.

const collectionKey = "all"

var (
	collectionCache *cache.Cache[[]AnnotatedStore]

	// Refetches are ordered by sequence number so that a stale
	// in-flight fetch resolving after a newer one cannot overwrite
	// fresher data.
	fetchSeq   atomic.Uint64
	appliedSeq atomic.Uint64
	applyMu    sync.Mutex
)

// InitCollectionCache initializes the store collection cache. This
// should be called during application startup.
func InitCollectionCache() error {
	var err error
	collectionCache, err = cache.New[[]AnnotatedStore](func(value []AnnotatedStore) int64 {
		return int64(len(value)) + 1
	}, "Store Collection Cache")
	return err
}

// FetchStores returns the full annotated store collection, from cache
// when possible. A repository failure surfaces as an empty collection
// so the pipeline renders "no results" instead of crashing.
func FetchStores() []AnnotatedStore {
	if stores, found := collectionCache.Get(collectionKey); found {
		return stores
	}

	seq := fetchSeq.Add(1)
	stores, err := GetAllStores()
	if err != nil {
		return nil
	}

	applyFetch(seq, stores)
	return stores
}

// applyFetch stores a fetch result unless a newer fetch was already
// applied (last write wins by sequence number).
func applyFetch(seq uint64, stores []AnnotatedStore) bool {
	applyMu.Lock()
	defer applyMu.Unlock()

	if seq <= appliedSeq.Load() {
		return false
	}
	appliedSeq.Store(seq)
	collectionCache.SetWithTTL(collectionKey, stores, int64(len(stores))+1, time.Minute)
	collectionCache.Wait()
	return true
}

// InvalidateCollection drops the cached collection. Called when a
// product change event arrives; the next FetchStores refetches.
func InvalidateCollection() {
	collectionCache.Clear()
}
