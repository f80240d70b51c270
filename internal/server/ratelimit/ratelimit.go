// Package ratelimit throttles API clients with per-endpoint token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket is a classic token bucket: tokens refill continuously at a
// fixed rate and each request consumes one.
type tokenBucket struct {
	mu       sync.Mutex
	capacity int     // burst ceiling
	refill   float64 // tokens per second
	tokens   float64
	updated  time.Time
}

func newTokenBucket(capacity int, refill float64) *tokenBucket {
	return &tokenBucket{
		capacity: capacity,
		refill:   refill,
		tokens:   float64(capacity),
		updated:  time.Now(),
	}
}

// take refills the bucket for the elapsed time and consumes one token if
// available. It reports whether the request may proceed, the whole tokens
// left afterwards, and when the bucket will be full again.
func (b *tokenBucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(float64(b.capacity), b.tokens+now.Sub(b.updated).Seconds()*b.refill)
	b.updated = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < float64(b.capacity) {
		deficit := float64(b.capacity) - b.tokens
		reset = now.Add(time.Duration(deficit / b.refill * float64(time.Second)))
	}
	return allowed, remaining, reset
}

// Info describes the rate limit decision for one request; the server turns
// it into X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one token bucket per client, endpoint, and method.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*tokenBucket
	config  *Config

	seenMu   sync.RWMutex
	lastSeen map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter for the given configuration. A nil config
// gets a permissive default of 1000 requests per minute per client.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	limiter := &Limiter{
		buckets:  make(map[string]*tokenBucket),
		config:   config,
		lastSeen: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanupLoop()
	}

	return limiter
}

// Allow decides whether a request from clientID against endpoint/method may
// proceed, and returns the limit state for response headers.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	if l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	endpointConfig := matchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Limit <= 0 marks an unlimited endpoint, e.g. the health check.
	if endpointConfig.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	bucketKey := clientID + ":" + endpoint + ":" + method
	bucket := l.getBucket(bucketKey, endpointConfig.Limit, endpointConfig.Window, endpointConfig.Burst)

	l.seenMu.Lock()
	l.lastSeen[bucketKey] = time.Now()
	l.seenMu.Unlock()

	allowed, remaining, reset := bucket.take()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(time.Until(reset), 0)
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      endpointConfig.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) getBucket(key string, limit int, window time.Duration, burst int) *tokenBucket {
	l.mu.RLock()
	bucket, exists := l.buckets[key]
	l.mu.RUnlock()
	if exists {
		return bucket
	}

	refill := float64(limit) / window.Seconds()
	capacity := burst
	if capacity <= 0 {
		capacity = limit
	}
	bucket = newTokenBucket(capacity, refill)

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, exists := l.buckets[key]; exists {
		return existing
	}
	l.buckets[key] = bucket
	return bucket
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictIdle drops buckets for clients that have been silent for over an
// hour, so one-off clients do not accumulate forever.
func (l *Limiter) evictIdle() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.seenMu.Lock()
	defer l.seenMu.Unlock()

	for key, seen := range l.lastSeen {
		if seen.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastSeen, key)
		}
	}
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
