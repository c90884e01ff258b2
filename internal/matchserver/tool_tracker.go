package matchserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TrackerAddInput is the input for job_tracker_add.
type TrackerAddInput struct {
	JobID   string `json:"job_id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Status  string `json:"status,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// TrackerListInput is the input for job_tracker_list.
type TrackerListInput struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// TrackerUpdateInput is the input for job_tracker_update.
type TrackerUpdateInput struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// TrackerResult is the output for add/update operations.
type TrackerResult struct {
	Application *match.TrackedApplication `json:"application,omitempty"`
	Message     string                    `json:"message"`
}

// TrackerListResult is the output for list operations.
type TrackerListResult struct {
	Applications []match.TrackedApplication `json:"applications"`
	Total        int                        `json:"total"`
}

func registerTrackerTools(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_add",
		Description: "Save a job application to the tracker with a status (saved, applied, interview, offer, rejected). Applications past 'saved' are hidden by filters with hide_applied_jobs set.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TrackerAddInput) (*mcp.CallToolResult, TrackerResult, error) {
		if deps.Tracker == nil {
			return nil, TrackerResult{}, fmt.Errorf("tracker is not configured")
		}
		engine.IncrTrackerOps()

		app, err := deps.Tracker.Add(ctx, input.JobID, input.Title, input.Company, input.Status, input.Notes)
		if err != nil {
			return nil, TrackerResult{}, err
		}
		return nil, TrackerResult{
			Application: app,
			Message:     fmt.Sprintf("%q at %q tracked as %s", app.Title, app.Company, app.Status),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_list",
		Description: "List tracked applications, newest first, optionally filtered by status.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TrackerListInput) (*mcp.CallToolResult, TrackerListResult, error) {
		if deps.Tracker == nil {
			return nil, TrackerListResult{}, fmt.Errorf("tracker is not configured")
		}
		engine.IncrTrackerOps()

		apps, err := deps.Tracker.List(ctx, input.Status, input.Limit)
		if err != nil {
			return nil, TrackerListResult{}, err
		}
		return nil, TrackerListResult{Applications: apps, Total: len(apps)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_update",
		Description: "Move a tracked application to a new status, optionally replacing its notes.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TrackerUpdateInput) (*mcp.CallToolResult, TrackerResult, error) {
		if deps.Tracker == nil {
			return nil, TrackerResult{}, fmt.Errorf("tracker is not configured")
		}
		engine.IncrTrackerOps()

		if err := deps.Tracker.UpdateStatus(ctx, input.JobID, input.Status, input.Notes); err != nil {
			return nil, TrackerResult{}, err
		}
		return nil, TrackerResult{
			Message: fmt.Sprintf("Application for job %q moved to %s", input.JobID, input.Status),
		}, nil
	})
}
