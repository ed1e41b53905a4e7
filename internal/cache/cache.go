// Package cache holds the short-lived article cache. Entries are keyed
// by (operation, period) and replaced atomically on successful fetches;
// this map is the only mutable shared state in the core.
package cache

import (
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-popular/internal/domain"
)

// DefaultTTL is the freshness window after which an entry is stale and
// eligible for re-fetch.
const DefaultTTL = 5 * time.Minute

// Clock supplies the current time. Injectable so TTL behavior is
// testable without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// Key partitions the cache by operation name and period.
type Key struct {
	Operation string
	Period    domain.Period
}

type entry struct {
	articles  []domain.Article
	fetchedAt time.Time
}

// ArticleCache is an in-memory TTL cache. The (articles, timestamp)
// pair is replaced as one unit under the write lock, so readers never
// observe a partially written entry. Stale entries are kept until the
// next successful fetch overwrites them; the key space is bounded, so
// no size-based eviction is needed.
type ArticleCache struct {
	mu      sync.RWMutex
	entries map[Key]entry
	ttl     time.Duration
	clock   Clock
}

// New builds a cache with the given freshness window. A non-positive
// ttl falls back to DefaultTTL, a nil clock to the system clock.
func New(ttl time.Duration, clock Clock) *ArticleCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &ArticleCache{
		entries: make(map[Key]entry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached articles for key if the entry is still fresh.
// The returned slice is a copy; callers may filter and sort it freely.
func (c *ArticleCache) Get(key Key) ([]domain.Article, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.clock.Now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return append([]domain.Article(nil), e.articles...), true
}

// Put stores articles under key stamped with the current time,
// replacing any previous entry as one unit.
func (c *ArticleCache) Put(key Key, articles []domain.Article) {
	e := entry{
		articles:  append([]domain.Article(nil), articles...),
		fetchedAt: c.clock.Now(),
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Len reports the number of stored entries, fresh or stale.
func (c *ArticleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
