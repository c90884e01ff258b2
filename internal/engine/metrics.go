package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	MatchRequests      atomic.Int64
	RecommendRequests  atomic.Int64
	FilterRequests     atomic.Int64
	SkillGapRequests   atomic.Int64
	CareerPathRequests atomic.Int64
	TrackerOps         atomic.Int64
	CatalogLoads       atomic.Int64
	CatalogErrors      atomic.Int64
}

// Incrementors for the matchserver package.
func IncrMatchRequests()      { metrics.MatchRequests.Add(1) }
func IncrRecommendRequests()  { metrics.RecommendRequests.Add(1) }
func IncrFilterRequests()     { metrics.FilterRequests.Add(1) }
func IncrSkillGapRequests()   { metrics.SkillGapRequests.Add(1) }
func IncrCareerPathRequests() { metrics.CareerPathRequests.Add(1) }
func IncrTrackerOps()         { metrics.TrackerOps.Add(1) }
func IncrCatalogLoads()       { metrics.CatalogLoads.Add(1) }
func IncrCatalogErrors()      { metrics.CatalogErrors.Add(1) }

// GetMetrics returns a snapshot of all counters plus cache stats.
// cache may be nil.
func GetMetrics(cache *Cache) map[string]int64 {
	hits, misses := cache.Stats()
	return map[string]int64{
		"match_requests":       metrics.MatchRequests.Load(),
		"recommend_requests":   metrics.RecommendRequests.Load(),
		"filter_requests":      metrics.FilterRequests.Load(),
		"skill_gap_requests":   metrics.SkillGapRequests.Load(),
		"career_path_requests": metrics.CareerPathRequests.Load(),
		"tracker_ops":          metrics.TrackerOps.Load(),
		"catalog_loads":        metrics.CatalogLoads.Load(),
		"catalog_errors":       metrics.CatalogErrors.Load(),
		"cache_hits":           hits,
		"cache_misses":         misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP
// metrics endpoint.
func FormatMetrics(cache *Cache) string {
	m := GetMetrics(cache)
	keys := []string{
		"match_requests", "recommend_requests", "filter_requests",
		"skill_gap_requests", "career_path_requests",
		"tracker_ops", "catalog_loads", "catalog_errors",
		"cache_hits", "cache_misses",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// TrackOperation logs a warning if an operation takes longer than 5s.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
