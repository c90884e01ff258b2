package matchserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FilterInput is the input for job_filter.
type FilterInput struct {
	Filters match.JobFilters `json:"filters"`
	// Jobs overrides the catalog when non-empty.
	Jobs []match.JobPosting `json:"jobs,omitempty"`
}

// FilterOutput is the output for job_filter.
type FilterOutput struct {
	Jobs          []match.JobPosting `json:"jobs"`
	Total         int                `json:"total"`
	ActiveFilters int                `json:"active_filters"`
	Descriptions  []string           `json:"descriptions,omitempty"`
	Summary       string             `json:"summary"`
}

func registerJobFilter(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_filter",
		Description: "Apply structured filters (text search, location/remote, job type, level, salary range, skills, company, benefits, hide-applied) to the job catalog or an explicit job list. Returns the visible subset plus the active-filter count and descriptions.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, FilterOutput, error) {
		engine.IncrFilterRequests()

		pool, err := jobPool(ctx, deps, input.Jobs)
		if err != nil {
			return nil, FilterOutput{}, err
		}

		applied, err := appliedIDs(ctx, deps, input.Filters)
		if err != nil {
			slog.Warn("job_filter: tracker unavailable, not hiding applied jobs", slog.Any("error", err))
		}

		visible := match.FilterJobs(pool, input.Filters, applied)
		active := match.CountActiveFilters(input.Filters)

		return nil, FilterOutput{
			Jobs:          visible,
			Total:         len(visible),
			ActiveFilters: active,
			Descriptions:  match.DescribeActiveFilters(input.Filters),
			Summary:       fmt.Sprintf("%d of %d jobs pass %d active filters.", len(visible), len(pool), active),
		}, nil
	})
}
