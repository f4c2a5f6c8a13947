package source

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachingFetcher memoizes snapshots from an underlying Fetcher for a
// bounded time. Entries expire after the TTL and the least recently used
// entry is evicted once maxEntries is reached. Errors are never cached;
// a failed fetch is retried on the next request.
//
// A cached snapshot keeps its original ID, so repeated requests within the
// TTL observe the same snapshot_id and a new one after refresh.
type CachingFetcher struct {
	fetcher Fetcher
	cache   *expirable.LRU[string, *Snapshot]
}

// NewCachingFetcher wraps a Fetcher with an expiring LRU cache.
func NewCachingFetcher(f Fetcher, maxEntries int, ttl time.Duration) *CachingFetcher {
	return &CachingFetcher{
		fetcher: f,
		cache:   expirable.NewLRU[string, *Snapshot](maxEntries, nil, ttl),
	}
}

// FetchTable returns a cached snapshot when one is fresh, fetching and
// storing otherwise.
func (c *CachingFetcher) FetchTable(ctx context.Context, sheetID, worksheet string) (*Snapshot, error) {
	key := sheetID + "\x00" + worksheet
	if snap, ok := c.cache.Get(key); ok {
		return snap, nil
	}

	snap, err := c.fetcher.FetchTable(ctx, sheetID, worksheet)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, snap)
	return snap, nil
}

// Len reports the number of live cache entries, for observability.
func (c *CachingFetcher) Len() int {
	return c.cache.Len()
}
