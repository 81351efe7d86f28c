package services

import (
	"container/list"
	"context"
	"sync"
)

const DefaultSimilarityCacheSize = 256

// CachedSimilarity memoizes a SimilarityScorer behind a bounded LRU cache.
// Similarity is a pure function of its two inputs, and a resume is typically
// compared against several description variants within one session, so cache
// hits are common. The cache is owned here, not global; tests reset it
// between runs with Reset.
type CachedSimilarity struct {
	scorer  SimilarityScorer
	maxSize int

	mu      sync.Mutex
	order   *list.List
	entries map[string]*list.Element
}

type cacheEntry struct {
	key   string
	score float64
}

func NewCachedSimilarity(scorer SimilarityScorer, maxSize int) *CachedSimilarity {
	if maxSize <= 0 {
		maxSize = DefaultSimilarityCacheSize
	}
	return &CachedSimilarity{
		scorer:  scorer,
		maxSize: maxSize,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

func (c *CachedSimilarity) Name() string { return c.scorer.Name() }

func (c *CachedSimilarity) Similarity(ctx context.Context, a, b string) (float64, error) {
	key := a + "\x1f" + b

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		score := el.Value.(*cacheEntry).score
		c.mu.Unlock()
		return score, nil
	}
	c.mu.Unlock()

	score, err := c.scorer.Similarity(ctx, a, b)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		c.entries[key] = c.order.PushFront(&cacheEntry{key: key, score: score})
		if c.order.Len() > c.maxSize {
			oldest := c.order.Back()
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	return score, nil
}

// Len reports the number of cached pairs.
func (c *CachedSimilarity) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Reset drops all cached results.
func (c *CachedSimilarity) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element)
}
