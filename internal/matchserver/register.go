// Package matchserver exposes the matching engine as MCP tools:
// job_match_score, job_recommendations, job_filter, skill_gap, career_paths,
// and the application tracker tools.
package matchserver

import (
	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Deps carries the stateful collaborators the tools need. Catalog and
// Tracker may be nil; tools that need them return a clear error instead.
type Deps struct {
	Cache   *engine.Cache
	Catalog *match.Catalog
	Tracker *match.Tracker
}

// RegisterTools registers all matching tools on the given MCP server.
func RegisterTools(server *mcp.Server, deps *Deps) {
	registerMatchScore(server, deps)
	registerJobRecommendations(server, deps)
	registerJobFilter(server, deps)
	registerSkillGap(server, deps)
	registerCareerPaths(server, deps)
	registerTrackerTools(server, deps)
}
