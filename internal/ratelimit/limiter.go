// Package ratelimit paces requests to the source host. The pipeline is
// sequential, so the limiter's job is politeness, not fairness: one
// token-bucket per host plus a random jitter slice between match fetches.
package ratelimit

import (
	"context"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces requests on a per-host basis.
type Limiter interface {
	// Wait blocks until a request for the given URL may proceed, or the
	// context is cancelled.
	Wait(ctx context.Context, urlStr string) error
}

// HostLimiter implements Limiter with one token bucket per host.
type HostLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	perHost  rate.Limit
	burst    int
	jitter   time.Duration
}

// NewHostLimiter creates a limiter allowing requestsPerSecond per host
// with the given burst. jitter adds a uniform random delay on top of
// every wait so request spacing does not look mechanical.
func NewHostLimiter(requestsPerSecond float64, burst int, jitter time.Duration) *HostLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1.0
	}
	if burst <= 0 {
		burst = 1
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(requestsPerSecond),
		burst:    burst,
		jitter:   jitter,
	}
}

// Wait blocks until the request for urlStr can proceed.
func (hl *HostLimiter) Wait(ctx context.Context, urlStr string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	host := extractHost(urlStr)
	if host == "" {
		// Invalid URL, let it proceed (it will fail elsewhere).
		return nil
	}

	if err := hl.getLimiter(host).Wait(ctx); err != nil {
		return err
	}

	if hl.jitter > 0 {
		select {
		case <-time.After(time.Duration(rand.Int63n(int64(hl.jitter)))):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (hl *HostLimiter) getLimiter(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if lim, ok := hl.limiters[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(hl.perHost, hl.burst)
	hl.limiters[host] = lim
	return lim
}

func extractHost(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
