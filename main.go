// go_match — Candidate–Job Matching & Filtering MCP server.
//
// Exposes the matching engine as MCP tools: job_match_score,
// job_recommendations, job_filter, skill_gap, career_paths, and the
// application tracker. Runs as HTTP MCP server or stdio transport.
//
// The engine core (internal/engine/match) is pure; state lives in the
// Postgres catalog, the SQLite tracker, and the result cache wired here.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/anatolykoptev/go_match/internal/matchserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	c := engine.Config{
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		TrackerPath:          env.Str("TRACKER_PATH", defaultTrackerPath()),
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		CatalogJobLimit:      env.Int("CATALOG_JOB_LIMIT", 500),
		ResultLimit:          env.Int("RESULT_LIMIT", 20),
	}
	engine.Init(c)

	slog.Info("starting go_match", slog.String("port", mcpPort))

	cache := engine.NewCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
	defer cache.Close()

	deps := &matchserver.Deps{Cache: cache}

	if tracker, err := match.OpenTracker(c.TrackerPath); err != nil {
		slog.Warn("tracker init failed, tracker tools disabled", slog.Any("error", err))
	} else {
		deps.Tracker = tracker
		defer tracker.Close()
		slog.Info("application tracker ready", slog.String("path", c.TrackerPath))
	}

	if c.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		catalog, err := match.ConnectCatalog(ctx, c.DatabaseURL)
		cancel()
		if err != nil {
			slog.Warn("catalog init failed, catalog-backed tools need explicit jobs", slog.Any("error", err))
		} else {
			deps.Catalog = catalog
			defer catalog.Close()
		}
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_match",
		Version: version,
	}, nil)

	matchserver.RegisterTools(server, deps)
	slog.Info("tools registered", slog.Int("count", 8))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_match",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      func() string { return engine.FormatMetrics(cache) },
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func defaultTrackerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tracker.db"
	}
	return filepath.Join(home, ".go_match", "tracker.db")
}
