package middleware

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const localLimiterIdle = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter throttles per scope inside one process. It backs RateLimit
// when no redis is configured, so limits are per instance rather than global.
type LocalLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

func NewLocalLimiter() *LocalLimiter {
	return &LocalLimiter{
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// FixedWindowAllow spends one token from the scope's bucket. The bucket holds
// limit tokens and refills at limit per window. The returned count estimates
// the hits made in the current window.
func (l *LocalLimiter) FixedWindowAllow(_ context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	if limit <= 0 || window <= 0 {
		return true, 0, nil
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	v, ok := l.visitors[scope]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(refillInterval(limit, window), int(limit))}
		l.visitors[scope] = v
	}
	v.lastSeen = now

	allowed := v.limiter.AllowN(now, 1)
	used := limit - int64(math.Floor(v.limiter.TokensAt(now)))
	if !allowed {
		used = limit + 1
	}
	return allowed, used, nil
}

// refillInterval spreads limit tokens over window. It never drops to zero,
// which rate.Every would treat as unlimited.
func refillInterval(limit int64, window time.Duration) rate.Limit {
	interval := window / time.Duration(limit)
	if interval < time.Nanosecond {
		interval = time.Nanosecond
	}
	return rate.Every(interval)
}

// sweep drops scopes idle for localLimiterIdle, at most once a minute.
func (l *LocalLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	l.lastSweep = now
	for scope, v := range l.visitors {
		if now.Sub(v.lastSeen) > localLimiterIdle {
			delete(l.visitors, scope)
		}
	}
}

func (l *LocalLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
