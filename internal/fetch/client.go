package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yiyuanlee/EPL-shot-maps/internal/cache"
	"github.com/yiyuanlee/EPL-shot-maps/internal/config"
	"github.com/yiyuanlee/EPL-shot-maps/internal/retry"
)

// Client fetches pages over plain HTTP with browser-like headers,
// a short-TTL page cache and bounded retry. Politeness pacing is layered
// on top with Paced so it covers every engine.
type Client struct {
	client    *http.Client
	cache     cache.Cache
	retryCfg  retry.Config
	cacheTTL  time.Duration
	userAgent string
	debugDir  string
}

// NewClient creates an HTTP fetcher from config.
func NewClient(cfg *config.Config, pageCache cache.Cache) (*Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = cfg.RetryAttempts

	return &Client{
		client: &http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: transport,
		},
		cache:     pageCache,
		retryCfg:  retryCfg,
		cacheTTL:  cfg.CacheTTL,
		userAgent: cfg.UserAgent,
	}, nil
}

// SetDebugDir makes the client dump every fetched page into dir for
// troubleshooting format changes.
func (c *Client) SetDebugDir(dir string) { c.debugDir = dir }

// Fetch retrieves the page text at pageURL, serving from cache when
// fresh. A response that does not look like a source page counts as a
// transient failure and is retried.
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	if c.cache != nil {
		if text, ok := c.cache.Get(pageURL); ok {
			log.Debug().Str("url", pageURL).Msg("Page served from cache")
			return text, nil
		}
	}

	var body string
	err := retry.WithRetry(ctx, c.retryCfg, func() error {
		text, err := c.get(ctx, pageURL)
		if err != nil {
			return err
		}
		body = text
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("could not retrieve page %s: %w", pageURL, err)
	}

	if c.cache != nil {
		c.cache.Set(pageURL, body, c.cacheTTL)
	}
	if c.debugDir != "" {
		c.dump(pageURL, body)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Referer", "https://understat.com/")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d (%s)", resp.StatusCode, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	body := string(raw)

	if !looksLikePage(body) {
		return "", ErrBlocked
	}

	log.Debug().
		Str("url", pageURL).
		Int("bytes", len(body)).
		Int64("response_time_ms", time.Since(start).Milliseconds()).
		Msg("Fetch completed")

	return body, nil
}

func (c *Client) dump(pageURL, body string) {
	name := strings.NewReplacer("://", "_", "/", "_", "?", "_", "&", "_").Replace(pageURL)
	path := filepath.Join(c.debugDir, name+".html")
	if err := os.MkdirAll(c.debugDir, 0o755); err != nil {
		log.Warn().Err(err).Str("dir", c.debugDir).Msg("Could not create debug directory")
		return
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Could not write debug page")
		return
	}
	log.Debug().Str("path", path).Msg("Saved debug page")
}
