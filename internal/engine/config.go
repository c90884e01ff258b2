package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	DatabaseURL          string // Postgres job/career-path catalog; empty disables the catalog
	TrackerPath          string // SQLite application tracker location
	RedisURL             string // L2 cache; empty = L1 only
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	CatalogJobLimit      int // max postings loaded per request
	ResultLimit          int // default cap on recommendation results
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
