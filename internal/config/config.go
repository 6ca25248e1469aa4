package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP/Scraping
	HTTPTimeout time.Duration
	UserAgent   string
	Proxy       string
	Engine      string // "http" or "browser"
	ChromePath  string

	// Politeness
	FetchDelay  time.Duration
	FetchJitter time.Duration

	// Resilience
	RetryAttempts int
	CacheTTL      time.Duration
}

// Load builds a Config by combining defaults, environment variables, and
// CLI flags, in that override order. Caller should pass the root
// *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:      DefaultLogLevel,
		JSONLog:       DefaultJSONLog,
		HTTPTimeout:   DefaultHTTPTimeout,
		UserAgent:     DefaultUserAgent,
		Engine:        DefaultEngine,
		FetchDelay:    DefaultFetchDelay,
		FetchJitter:   DefaultFetchJitter,
		RetryAttempts: DefaultRetryAttempts,
		CacheTTL:      DefaultCacheTTL,
	}

	// Override from environment variables
	if v := os.Getenv("SHOTMAPS_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("SHOTMAPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SHOTMAPS_CHROME_PATH"); v != "" {
		cfg.ChromePath = v
	}

	// Read CLI flags if provided
	if cmd != nil {
		if f := cmd.Flags().Lookup("user-agent"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.UserAgent = s
			}
		}
		if f := cmd.Flags().Lookup("proxy"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Proxy = s
			}
		}
		if f := cmd.Flags().Lookup("timeout"); f != nil {
			if s := f.Value.String(); s != "" {
				if d, err := time.ParseDuration(s); err == nil {
					cfg.HTTPTimeout = d
				}
			}
		}
		if f := cmd.Flags().Lookup("json"); f != nil {
			if f.Value.String() == "true" {
				cfg.JSONLog = true
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "debug"
			}
		}
		if f := cmd.Flags().Lookup("quiet"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "error"
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
