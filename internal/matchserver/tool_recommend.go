package matchserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RecommendInput is the input for job_recommendations.
type RecommendInput struct {
	Candidate match.CandidateProfile `json:"candidate"`
	Filters   match.JobFilters       `json:"filters,omitempty"`
	// Jobs overrides the catalog as the candidate pool when non-empty.
	Jobs  []match.JobPosting `json:"jobs,omitempty"`
	Limit int                `json:"limit,omitempty"`
}

// RecommendOutput is the output for job_recommendations.
type RecommendOutput struct {
	Recommendations []match.JobRecommendation `json:"recommendations"`
	Considered      int                       `json:"considered"`
	Summary         string                    `json:"summary"`
}

func registerJobRecommendations(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_recommendations",
		Description: "Filter the job catalog with structured filters, then rank the survivors for a candidate using the preference-aware recommendation score. Returns jobs sorted by score with per-job reasons. Pass jobs explicitly to rank an ad-hoc pool instead of the catalog.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input RecommendInput) (*mcp.CallToolResult, RecommendOutput, error) {
		engine.IncrRecommendRequests()

		pool, err := jobPool(ctx, deps, input.Jobs)
		if err != nil {
			return nil, RecommendOutput{}, err
		}

		applied, err := appliedIDs(ctx, deps, input.Filters)
		if err != nil {
			slog.Warn("job_recommendations: tracker unavailable, not hiding applied jobs", slog.Any("error", err))
		}

		visible := match.FilterJobs(pool, input.Filters, applied)
		recs := match.RecommendJobs(input.Candidate, visible)

		limit := input.Limit
		if limit <= 0 {
			limit = engine.Cfg.ResultLimit
		}
		if limit > 0 && len(recs) > limit {
			recs = recs[:limit]
		}

		top := 0
		if len(recs) > 0 {
			top = recs[0].Score
		}
		return nil, RecommendOutput{
			Recommendations: recs,
			Considered:      len(visible),
			Summary:         fmt.Sprintf("Ranked %d of %d visible jobs. Top score: %d/100.", len(recs), len(visible), top),
		}, nil
	})
}

// jobPool returns the explicit pool when given, otherwise loads the catalog
// with retry.
func jobPool(ctx context.Context, deps *Deps, explicit []match.JobPosting) ([]match.JobPosting, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	if deps.Catalog == nil {
		return nil, fmt.Errorf("no jobs supplied and no catalog configured (set DATABASE_URL)")
	}
	engine.IncrCatalogLoads()
	jobs, err := engine.RetryDo(ctx, engine.DefaultRetryConfig, func() ([]match.JobPosting, error) {
		return deps.Catalog.Jobs(ctx, engine.Cfg.CatalogJobLimit)
	})
	if err != nil {
		engine.IncrCatalogErrors()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return jobs, nil
}

// appliedIDs resolves the applied-job set when the filter asks for it.
func appliedIDs(ctx context.Context, deps *Deps, filters match.JobFilters) (map[string]bool, error) {
	if !filters.HideAppliedJobs || deps.Tracker == nil {
		return nil, nil
	}
	return deps.Tracker.AppliedJobIDs(ctx)
}
