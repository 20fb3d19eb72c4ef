package reco

import (
	"sort"
	"sync"
	"time"

	"msaRecommender/domain"
)

// CacheKey identifies one distinct recommendation request.
type CacheKey struct {
	UserID   string
	Count    int
	MineOnly bool
}

type cacheEntry struct {
	payload    domain.RecommendationPayload
	insertedAt time.Time
}

// Cache is the process-wide response cache in front of the pipeline.
// One instance is shared by every request for the process lifetime; the
// mutex covers reads, writes and the post-insert compaction, all of
// which are short (the compaction sort is the worst case and the cache
// is bounded). Two requests racing on the same missed key may both run
// the pipeline and both write; last writer wins.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	entries map[CacheKey]cacheEntry
	hits    uint64
	misses  uint64

	now func() time.Time // overridable in tests
}

// CacheStats is a point-in-time snapshot. Hit and miss counters only
// ever grow for the life of the process.
type CacheStats struct {
	Size   int    `json:"size"`
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

func NewCache(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[CacheKey]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached payload when one exists and is younger than the
// TTL. An expired entry counts as a miss but is left in place; it is
// overwritten by the next Put for its key or dropped by compaction.
func (c *Cache) Get(key CacheKey) (domain.RecommendationPayload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok && c.now().Sub(entry.insertedAt) < c.ttl {
		c.hits++
		CacheHitsTotal.Inc()
		return entry.payload, true
	}

	c.misses++
	CacheMissesTotal.Inc()
	return domain.RecommendationPayload{}, false
}

// Put stores a payload and, when the insert pushes the cache past its
// capacity, synchronously compacts down to the newest half.
func (c *Cache) Put(key CacheKey, payload domain.RecommendationPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		payload:    payload,
		insertedAt: c.now(),
	}

	if len(c.entries) > c.maxSize {
		c.compact()
	}
}

// compact retains the most-recently-inserted maxSize/2 entries and
// discards the rest. Batch compaction, not per-entry LRU. Caller holds
// the mutex.
func (c *Cache) compact() {
	type aged struct {
		key        CacheKey
		insertedAt time.Time
	}

	all := make([]aged, 0, len(c.entries))
	for key, entry := range c.entries {
		all = append(all, aged{key: key, insertedAt: entry.insertedAt})
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].insertedAt.Before(all[j].insertedAt)
	})

	keep := c.maxSize / 2
	if keep > len(all) {
		keep = len(all)
	}

	retained := make(map[CacheKey]cacheEntry, keep)
	for _, a := range all[len(all)-keep:] {
		retained[a.key] = c.entries[a.key]
	}
	c.entries = retained
}

func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Size:   len(c.entries),
		Hits:   c.hits,
		Misses: c.misses,
	}
}
