// Package ratelimit keeps an independent token bucket per key.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultIdle = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type KeyedRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a limiter allowing rps requests per second per key with the given
// burst. Keys unseen for idle are forgotten. A non-positive rps yields a
// limiter that allows everything and tracks nothing.
func New(rps float64, burst int, idle time.Duration) *KeyedRateLimiter {
	if burst <= 0 {
		burst = 1
	}

	if idle <= 0 {
		idle = defaultIdle
	}

	krl := &KeyedRateLimiter{
		entries: make(map[string]*entry),
		limit:   rate.Limit(rps),
		burst:   burst,
		idle:    idle,
		now:     time.Now,
		done:    make(chan struct{}),
	}

	if rps <= 0 {
		krl.limit = rate.Inf

		return krl
	}

	go krl.cleanup()

	return krl
}

func (krl *KeyedRateLimiter) Allow(key string) bool {
	if krl.limit == rate.Inf {
		return true
	}

	krl.mu.Lock()
	defer krl.mu.Unlock()

	now := krl.now()

	e, ok := krl.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(krl.limit, krl.burst)}
		krl.entries[key] = e
	}

	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Len reports how many keys are tracked.
func (krl *KeyedRateLimiter) Len() int {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	return len(krl.entries)
}

// Stop ends the cleanup goroutine.
func (krl *KeyedRateLimiter) Stop() {
	krl.stopOnce.Do(func() {
		close(krl.done)
	})
}

func (krl *KeyedRateLimiter) cleanup() {
	ticker := time.NewTicker(krl.idle / 2) //nolint:gomnd
	defer ticker.Stop()

	for {
		select {
		case <-krl.done:
			return
		case <-ticker.C:
			krl.sweep()
		}
	}
}

// sweep drops keys idle for longer than the idle period.
func (krl *KeyedRateLimiter) sweep() int {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	cutoff := krl.now().Add(-krl.idle)
	dropped := 0

	for key, e := range krl.entries {
		if e.lastSeen.Before(cutoff) {
			delete(krl.entries, key)
			dropped++
		}
	}

	return dropped
}
