// Package ratelimit provides per-client request limiting using a token
// bucket. PDF printing holds a headless browser for seconds at a time, so
// the export route gets a much smaller bucket than the rest of the API.
package ratelimit

import (
	"sync"
	"time"
)

// Info reports the state of a client's bucket after a decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled      bool
	DefaultLimit int           // Requests per window for ordinary routes
	ExportLimit  int           // Requests per window for PDF export
	Window       time.Duration // Refill window
	CleanupEvery time.Duration // How often idle buckets are dropped
	IdleExpiry   time.Duration // Bucket lifetime without access
}

// DefaultConfig returns limits suitable for a single-user local server.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		DefaultLimit: 600,
		ExportLimit:  10,
		Window:       time.Minute,
		CleanupEvery: 5 * time.Minute,
		IdleExpiry:   time.Hour,
	}
}

type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
}

// take refills the bucket for elapsed time, then tries to consume one token.
func (b *bucket) take() (allowed bool, remaining int, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now
	b.lastAccess = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true, int(b.tokens), 0
	}

	needed := 1.0 - b.tokens
	return false, 0, time.Duration(needed / b.refillRate * float64(time.Second))
}

// Limiter manages token buckets keyed by client and route class.
type Limiter struct {
	config  *Config
	buckets map[string]*bucket
	mu      sync.Mutex
	stop    chan struct{}
	ticker  *time.Ticker
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}

	if config.Enabled && config.CleanupEvery > 0 {
		l.ticker = time.NewTicker(config.CleanupEvery)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether a request from clientID may proceed. The export flag
// selects the smaller PDF bucket.
func (l *Limiter) Allow(clientID string, export bool) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	limit := l.config.DefaultLimit
	key := clientID
	if export {
		limit = l.config.ExportLimit
		key = clientID + ":export"
	}
	if limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.getBucket(key, limit)
	allowed, remaining, retryAfter := b.take()

	return allowed, Info{
		Allowed:    allowed,
		Limit:      limit,
		Remaining:  remaining,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) getBucket(key string, limit int) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	b := newBucket(limit, float64(limit)/l.config.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.dropIdle()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) dropIdle() {
	cutoff := time.Now().Add(-l.config.IdleExpiry)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		b.mu.Lock()
		idle := b.lastAccess.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
