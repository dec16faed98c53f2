package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Decision is the outcome of one rate limit check
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter admits or rejects one hit of a key
type Limiter interface {
	Allow(key string) Decision
}

// TokenBucketLimiter keeps one token bucket per key in memory. It is used on
// a single instance deployment and as the fallback of RedisLimiter.
type TokenBucketLimiter struct {
	mu      sync.Mutex
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	entries map[string]*bucket
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewTokenBucket(rps float64, burst int) *TokenBucketLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucketLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
		entries: make(map[string]*bucket),
	}
}

func (l *TokenBucketLimiter) Allow(key string) Decision {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanup(now)

	b, ok := l.entries[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = b
	}
	b.lastSeen = now

	allowed := b.lim.AllowN(now, 1)
	tokens := b.lim.TokensAt(now)

	remaining := int(math.Floor(tokens))
	if remaining < 0 {
		remaining = 0
	}

	// time until the bucket is full again
	missing := float64(l.burst) - tokens
	resetAt := now
	if missing > 0 {
		resetAt = now.Add(time.Duration(missing / float64(l.rps) * float64(time.Second)))
	}

	return Decision{
		Allowed:   allowed,
		Limit:     l.burst,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}

func (l *TokenBucketLimiter) cleanup(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for k, b := range l.entries {
		if b.lastSeen.Before(cutoff) {
			delete(l.entries, k)
		}
	}
}
