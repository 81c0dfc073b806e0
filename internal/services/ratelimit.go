package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedIPs bounds the limiter map. Unauthenticated clients churn
// through addresses, so past this point the map is reset wholesale rather
// than aged entry by entry.
const maxTrackedIPs = 10000

// IPRateLimiter hands out a token bucket per client address.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	logger   *slog.Logger
}

func NewIPRateLimiter(limit rate.Limit, burst int, logger *slog.Logger) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
		logger:   logger,
	}
}

// Allow reports whether a request from ip may proceed right now.
func (i *IPRateLimiter) Allow(ip string) bool {
	return i.GetLimiter(ip).Allow()
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(i.limit, i.burst)
		i.limiters[ip] = limiter
	}
	return limiter
}

// StartCleanup resets the map whenever it grows past maxTrackedIPs. The
// goroutine stops when ctx is cancelled.
func (i *IPRateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				i.mu.Lock()
				if len(i.limiters) > maxTrackedIPs {
					i.logger.Info("Resetting rate limiter map", "tracked_ips", len(i.limiters))
					i.limiters = make(map[string]*rate.Limiter)
				}
				i.mu.Unlock()
			}
		}
	}()
}
