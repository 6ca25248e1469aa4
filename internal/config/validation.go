package config

import "fmt"

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.RetryAttempts <= 0 {
		return fmt.Errorf("retry attempts must be > 0")
	}
	if c.FetchDelay < 0 || c.FetchJitter < 0 {
		return fmt.Errorf("fetch delay and jitter must not be negative")
	}
	if c.Engine != EngineHTTP && c.Engine != EngineBrowser {
		return fmt.Errorf("engine must be %q or %q", EngineHTTP, EngineBrowser)
	}
	return nil
}
