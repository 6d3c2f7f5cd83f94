package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/gitforum/app-trending-api/internal/models"
)

// ResultCache stores ranked responses in memory. Safe because the ranking
// pipeline is a pure function of its inputs; entries only go stale as "now"
// drifts, which the short TTL bounds.
type ResultCache struct {
	data    map[string]*cachedResult
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

type cachedResult struct {
	response  *models.TrendingResponse
	timestamp time.Time
}

// NewResultCache creates a cache with the given TTL and entry limit.
func NewResultCache(ttl time.Duration, maxSize int) *ResultCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if maxSize <= 0 {
		maxSize = 500
	}
	return &ResultCache{
		data:    make(map[string]*cachedResult),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get returns a fresh cached response, or nil.
func (c *ResultCache) Get(key string) *models.TrendingResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.data[key]; ok {
		if time.Since(cached.timestamp) < c.ttl {
			return cached.response
		}
	}
	return nil
}

// Set stores a response.
func (c *ResultCache) Set(key string, response *models.TrendingResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.data) >= c.maxSize {
		c.cleanup()
	}

	c.data[key] = &cachedResult{
		response:  response,
		timestamp: time.Now(),
	}
}

// GenerateKey builds a cache key from the endpoint name and the request's
// filter state.
func (c *ResultCache) GenerateKey(endpoint string, req *models.TrendingRequest) string {
	keyData := fmt.Sprintf(
		"%s|%s|%s|%s|%s|%s|%d|%d",
		endpoint,
		req.Query,
		req.Language,
		req.Tags,
		req.Window,
		req.Sort,
		req.Page,
		req.PerPage,
	)

	hash := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(hash[:16])
}

// Clear empties the cache. Called after every score refresh so stale ranks
// never outlive a recompute.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*cachedResult)
}

// cleanup drops expired entries, then the oldest one if still full.
func (c *ResultCache) cleanup() {
	now := time.Now()
	for key, cached := range c.data {
		if now.Sub(cached.timestamp) > c.ttl {
			delete(c.data, key)
		}
	}

	if len(c.data) >= c.maxSize {
		oldest := time.Now()
		oldestKey := ""
		for key, cached := range c.data {
			if cached.timestamp.Before(oldest) {
				oldest = cached.timestamp
				oldestKey = key
			}
		}
		if oldestKey != "" {
			delete(c.data, oldestKey)
		}
	}
}
