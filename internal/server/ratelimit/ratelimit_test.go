package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	bucket := newTokenBucket(5, 0.001)

	for i := 0; i < 5; i++ {
		allowed, remaining, _ := bucket.take()
		assert.True(t, allowed, "request %d should pass", i+1)
		assert.Equal(t, 4-i, remaining)
	}

	allowed, remaining, reset := bucket.take()
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.True(t, reset.After(time.Now()))
}

func TestTokenBucket_Refills(t *testing.T) {
	// 50 tokens/second, so one token is back within ~20ms.
	bucket := newTokenBucket(1, 50)

	allowed, _, _ := bucket.take()
	require.True(t, allowed)
	allowed, _, _ = bucket.take()
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _, _ = bucket.take()
	assert.True(t, allowed, "bucket should refill over time")
}

func TestTokenBucket_CapacityCapped(t *testing.T) {
	bucket := newTokenBucket(2, 1000)
	time.Sleep(20 * time.Millisecond)

	// Even after ample refill time only capacity tokens are available.
	for i := 0; i < 2; i++ {
		allowed, _, _ := bucket.take()
		require.True(t, allowed)
	}
	allowed, _, _ := bucket.take()
	assert.False(t, allowed)
}

func testConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		CleanupInterval: 0, // no background goroutine in tests
		Whitelist:       map[string]bool{"trusted": true},
		Blacklist:       map[string]bool{"banned": true},
		EndpointConfigs: []EndpointConfig{
			{Path: "/parse", Method: "POST", Limit: 120, Window: time.Minute, Burst: 3},
			{Path: "/resumes/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 2},
		},
	}
}

func TestLimiter_EndpointBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("client-a", "/parse", "POST")
		assert.True(t, allowed, "request %d should pass", i+1)
		assert.Equal(t, 120, info.Limit)
	}

	allowed, info := limiter.Allow("client-a", "/parse", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-a", "/parse", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("client-a", "/parse", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket.
	allowed, _ = limiter.Allow("client-b", "/parse", "POST")
	assert.True(t, allowed)
}

func TestLimiter_PrefixMatch(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// "/resumes/" covers "/resumes/{id}".
	for i := 0; i < 2; i++ {
		allowed, info := limiter.Allow("client-a", "/resumes/8a3f", "DELETE")
		require.True(t, allowed)
		assert.Equal(t, 60, info.Limit)
	}
	allowed, _ := limiter.Allow("client-a", "/resumes/8a3f", "DELETE")
	assert.False(t, allowed)
}

func TestLimiter_UnknownEndpointUsesDefault(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("client-a", "/somewhere", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	config := testConfig()
	config.DefaultLimit = 1
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("client-a", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("trusted", "/parse", "POST")
		require.True(t, allowed, "whitelisted client must never be throttled")
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("banned", "/parse", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	config := testConfig()
	config.Enabled = false
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 500; i++ {
		allowed, _ := limiter.Allow("client-a", "/parse", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_NilConfigDefaults(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("client-a", "/parse", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_ConcurrentAllow(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("client-a", "/parse", "POST"); allowed {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Exactly the burst capacity may pass, no matter the interleaving.
	assert.Equal(t, 3, granted)
}

func TestLimiter_EvictIdle(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		limiter.Allow(fmt.Sprintf("client-%d", i), "/parse", "POST")
	}
	require.Len(t, limiter.buckets, 3)

	limiter.seenMu.Lock()
	limiter.lastSeen["client-0:/parse:POST"] = time.Now().Add(-2 * time.Hour)
	limiter.seenMu.Unlock()

	limiter.evictIdle()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	assert.Len(t, limiter.buckets, 2)
	assert.NotContains(t, limiter.buckets, "client-0:/parse:POST")
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/parse", Method: "POST", Limit: 120},
		{Path: "/resumes/", Method: "GET", Limit: 60},
	}

	t.Run("exact match", func(t *testing.T) {
		config := matchEndpoint("/parse", "POST", configs)
		require.NotNil(t, config)
		assert.Equal(t, 120, config.Limit)
	})

	t.Run("prefix match", func(t *testing.T) {
		config := matchEndpoint("/resumes/8a3f", "GET", configs)
		require.NotNil(t, config)
		assert.Equal(t, 60, config.Limit)
	})

	t.Run("method must match", func(t *testing.T) {
		assert.Nil(t, matchEndpoint("/parse", "GET", configs))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, matchEndpoint("/unknown", "POST", configs))
	})

	t.Run("health is unlimited", func(t *testing.T) {
		config := matchEndpoint("/health", "GET", configs)
		require.NotNil(t, config)
		assert.Equal(t, 0, config.Limit)
	})
}
