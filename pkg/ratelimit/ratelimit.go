package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// minSweep is the bucket count below which full buckets are never swept
const minSweep = 1024

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(profileID int64) bool
}

// InMemoryLimiter keeps one token bucket per profile in memory.
// Buckets that have refilled completely are dropped once the map doubles
// in size, a full bucket being indistinguishable from a new one.
type InMemoryLimiter struct {
	profiles map[int64]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
	sweepAt  int
	now      func() time.Time
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(30, time.Minute, 10) -> 30 actions per minute, burst of 10
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &InMemoryLimiter{
		profiles: make(map[int64]*rate.Limiter),
		r:        rate.Every(per / time.Duration(requests)),
		b:        burst,
		sweepAt:  minSweep,
		now:      time.Now,
	}
}

var _ Limiter = (*InMemoryLimiter)(nil)

// Allow checks if a profile is allowed to perform an action
func (l *InMemoryLimiter) Allow(profileID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	limiter, exists := l.profiles[profileID]
	if !exists {
		if len(l.profiles) >= l.sweepAt {
			l.sweep(now)
		}
		limiter = rate.NewLimiter(l.r, l.b)
		l.profiles[profileID] = limiter
	}

	return limiter.AllowN(now, 1)
}

// Len returns the number of tracked buckets
func (l *InMemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.profiles)
}

func (l *InMemoryLimiter) sweep(now time.Time) {
	for id, limiter := range l.profiles {
		if limiter.TokensAt(now) >= float64(l.b) {
			delete(l.profiles, id)
		}
	}
	l.sweepAt = max(minSweep, 2*len(l.profiles))
}
