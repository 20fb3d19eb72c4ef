package reco

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"msaRecommender/domain"
)

func testPayload(userID string, n int) domain.RecommendationPayload {
	return domain.RecommendationPayload{
		UserID:          userID,
		Count:           n,
		Recommendations: []domain.Recommendation{},
	}
}

func TestCacheHitReturnsIdenticalPayload(t *testing.T) {
	cache := NewCache(time.Hour, 10)
	key := CacheKey{UserID: "101", Count: 5, MineOnly: true}
	payload := testPayload("101", 5)

	if _, ok := cache.Get(key); ok {
		t.Fatal("empty cache reported a hit")
	}

	cache.Put(key, payload)

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("fresh entry reported a miss")
	}
	if !reflect.DeepEqual(got, payload) {
		t.Fatalf("cached payload diverged: %+v vs %+v", got, payload)
	}

	stats := cache.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Size != 1 {
		t.Fatalf("stats = %+v, want 1 hit / 1 miss / size 1", stats)
	}
}

func TestCacheKeyCoversCountAndPolicy(t *testing.T) {
	cache := NewCache(time.Hour, 10)
	cache.Put(CacheKey{UserID: "101", Count: 5, MineOnly: true}, testPayload("101", 5))

	if _, ok := cache.Get(CacheKey{UserID: "101", Count: 10, MineOnly: true}); ok {
		t.Error("different count shared an entry")
	}
	if _, ok := cache.Get(CacheKey{UserID: "101", Count: 5, MineOnly: false}); ok {
		t.Error("different policy shared an entry")
	}
}

func TestCacheTTLExpiryIsAMissButNotADelete(t *testing.T) {
	cache := NewCache(time.Minute, 10)
	now := time.Unix(1000, 0)
	cache.now = func() time.Time { return now }

	key := CacheKey{UserID: "101", Count: 5, MineOnly: true}
	cache.Put(key, testPayload("101", 5))

	now = now.Add(59 * time.Second)
	if _, ok := cache.Get(key); !ok {
		t.Fatal("entry inside the TTL reported a miss")
	}

	now = now.Add(2 * time.Second)
	if _, ok := cache.Get(key); ok {
		t.Fatal("expired entry reported a hit")
	}

	// expired entries stay resident until overwritten or compacted
	if stats := cache.Stats(); stats.Size != 1 {
		t.Fatalf("expired entry was proactively deleted, size = %d", stats.Size)
	}

	// a new write for the same key serves again
	cache.Put(key, testPayload("101", 5))
	if _, ok := cache.Get(key); !ok {
		t.Fatal("rewritten entry reported a miss")
	}
}

func TestCacheEvictionKeepsNewestHalf(t *testing.T) {
	const maxSize = 10

	cache := NewCache(time.Hour, maxSize)
	now := time.Unix(1000, 0)
	cache.now = func() time.Time { return now }

	for i := 0; i <= maxSize; i++ {
		now = now.Add(time.Second)
		cache.Put(CacheKey{UserID: fmt.Sprintf("user-%d", i), Count: 5, MineOnly: true}, testPayload("x", 5))
	}

	stats := cache.Stats()
	if stats.Size != maxSize/2 {
		t.Fatalf("size after compaction = %d, want %d", stats.Size, maxSize/2)
	}

	// every retained entry is newer than every discarded one
	for i := 0; i <= maxSize; i++ {
		key := CacheKey{UserID: fmt.Sprintf("user-%d", i), Count: 5, MineOnly: true}
		_, ok := cache.Get(key)
		if wantRetained := i > maxSize-maxSize/2; ok != wantRetained {
			t.Errorf("entry %d retained=%v, want %v", i, ok, wantRetained)
		}
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache(time.Hour, 50)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := CacheKey{UserID: fmt.Sprintf("user-%d", i%60), Count: 10, MineOnly: worker%2 == 0}
				if _, ok := cache.Get(key); !ok {
					cache.Put(key, testPayload(key.UserID, 10))
				}
			}
		}(w)
	}
	wg.Wait()

	if stats := cache.Stats(); stats.Size > 50 {
		t.Fatalf("cache exceeded capacity after concurrent load: %d", stats.Size)
	}
}
