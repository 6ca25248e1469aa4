package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel    = "info"
	DefaultJSONLog     = false
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	DefaultHTTPTimeout = 35 * time.Second
	DefaultLeague      = "EPL"

	// Spacing between successive match-page fetches. Not a correctness
	// requirement, a courtesy to the source.
	DefaultFetchDelay  = 900 * time.Millisecond
	DefaultFetchJitter = 400 * time.Millisecond

	DefaultRetryAttempts = 6
	DefaultCacheTTL      = 10 * time.Minute

	EngineHTTP    = "http"
	EngineBrowser = "browser"
	DefaultEngine = EngineHTTP
)
