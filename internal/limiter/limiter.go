// Package limiter throttles inbound requests per client key.
package limiter

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether the next request for key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter shares a GCRA budget across replicas through Redis.
type RedisLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

func NewRedisLimiter(rdb *redis.Client, perSecond, burst int) *RedisLimiter {
	limit := redis_rate.PerSecond(perSecond)
	if burst > 0 {
		limit.Burst = burst
	}
	return &RedisLimiter{
		limiter: redis_rate.NewLimiter(rdb),
		limit:   limit,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := l.limiter.Allow(ctx, "inbound:"+key, l.limit)
	if err != nil {
		return false, err
	}
	return res.Allowed > 0, nil
}

const (
	// cleanupThreshold is the minimum map size before a cleanup pass runs.
	cleanupThreshold = 500
	// maxIdleAge is the duration after which an idle key is eligible for cleanup.
	maxIdleAge = 10 * time.Minute
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter keeps one token bucket per key in process memory and prunes
// idle keys inline.
type LocalLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	r       rate.Limit
	b       int
	now     func() time.Time
}

func NewLocalLimiter(perSecond, burst int) *LocalLimiter {
	if burst <= 0 {
		burst = perSecond
	}
	return &LocalLimiter{
		entries: make(map[string]*entry),
		r:       rate.Limit(perSecond),
		b:       burst,
		now:     time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.get(key).AllowN(l.now(), 1), nil
}

func (l *LocalLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.entries) > cleanupThreshold {
		cutoff := now.Add(-maxIdleAge)
		for k, e := range l.entries {
			if e.lastSeen.Before(cutoff) {
				delete(l.entries, k)
			}
		}
	}

	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.r, l.b)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// Len returns the number of tracked keys.
func (l *LocalLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// New returns a Redis-backed limiter when rdb is non-nil, otherwise a local one.
func New(rdb *redis.Client, perSecond, burst int) Limiter {
	if rdb != nil {
		return NewRedisLimiter(rdb, perSecond, burst)
	}
	return NewLocalLimiter(perSecond, burst)
}
