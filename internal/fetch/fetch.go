// Package fetch is the transport layer of the pipeline. The rest of the
// code treats a fetch as "eventually returns page text or fails"; retry,
// rate limiting, caching and the bot-challenge workarounds all live here.
package fetch

import (
	"context"
	"errors"
	"strings"

	"github.com/yiyuanlee/EPL-shot-maps/internal/ratelimit"
)

// Fetcher retrieves the text of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Paced wraps a Fetcher with the politeness limiter so successive
// fetches are spaced out regardless of which engine is underneath.
type Paced struct {
	Inner   Fetcher
	Limiter ratelimit.Limiter
}

// Fetch waits for the rate limiter, then delegates.
func (p Paced) Fetch(ctx context.Context, url string) (string, error) {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, url); err != nil {
			return "", err
		}
	}
	return p.Inner.Fetch(ctx, url)
}

// ErrBlocked indicates the response came back but does not look like a
// real page from the source (challenge interstitial, empty body).
var ErrBlocked = errors.New("blocked or empty response")

// looksLikePage is a heuristic check that the body is an actual source
// page and not a challenge page. Real pages carry at least one of these
// tokens.
func looksLikePage(body string) bool {
	if body == "" {
		return false
	}
	for _, token := range []string{"__NUXT__", "matchesData", "shotsData"} {
		if strings.Contains(body, token) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(body), "understat")
}
