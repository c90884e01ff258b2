package matchserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CareerPathsInput is the input for career_paths.
type CareerPathsInput struct {
	CurrentRole     string   `json:"current_role"`
	Skills          []string `json:"skills,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	ExperienceYears float64  `json:"experience_years,omitempty"`
	// Paths overrides the catalog when non-empty.
	Paths []match.CareerPath `json:"paths,omitempty"`
	Limit int                `json:"limit,omitempty"`
}

// CareerPathsOutput is the output for career_paths.
type CareerPathsOutput struct {
	Recommendations []match.CareerRecommendation `json:"recommendations"`
	Summary         string                       `json:"summary"`
}

func registerCareerPaths(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_paths",
		Description: "Rank career transitions reachable from the candidate's current role using historical transition data. Returns paths sorted by match score with skill-gap analysis, a timeline estimate in months, and concrete next steps.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CareerPathsInput) (*mcp.CallToolResult, CareerPathsOutput, error) {
		if input.CurrentRole == "" {
			return nil, CareerPathsOutput{}, fmt.Errorf("current_role is required")
		}
		engine.IncrCareerPathRequests()

		paths := input.Paths
		if len(paths) == 0 {
			if deps.Catalog == nil {
				return nil, CareerPathsOutput{}, fmt.Errorf("no paths supplied and no catalog configured (set DATABASE_URL)")
			}
			engine.IncrCatalogLoads()
			var err error
			paths, err = engine.RetryDo(ctx, engine.DefaultRetryConfig, func() ([]match.CareerPath, error) {
				return deps.Catalog.CareerPaths(ctx)
			})
			if err != nil {
				engine.IncrCatalogErrors()
				return nil, CareerPathsOutput{}, fmt.Errorf("load career paths: %w", err)
			}
		}

		recs := match.RecommendCareerPaths(paths, input.CurrentRole, input.Skills, input.Industry, input.ExperienceYears)
		if input.Limit > 0 && len(recs) > input.Limit {
			recs = recs[:input.Limit]
		}

		summary := fmt.Sprintf("No transitions found from %q.", input.CurrentRole)
		if len(recs) > 0 {
			summary = fmt.Sprintf("%d transitions from %q. Best: %s (%d/100, ~%d months).",
				len(recs), input.CurrentRole, recs[0].Path.ToRole, recs[0].MatchScore, recs[0].TimelineMonths)
		}
		return nil, CareerPathsOutput{Recommendations: recs, Summary: summary}, nil
	})
}
