package config

import "time"

// CacheConfig configures the GET response cache.  Caching only
// applies to the reference collections whose routes opt in; booking
// and payment routes always hit the database.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string // Redis key namespace
}

// LoadCacheConfig reads CACHE_* environment variables with defaults.
func LoadCacheConfig() CacheConfig {
	c := CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  envStr("CACHE_PREFIX", "cache"),
	}
	if c.TTL <= 0 {
		c.TTL = 30 * time.Second
	}
	return c
}
