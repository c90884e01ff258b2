package matchserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MatchScoreInput is the input for job_match_score.
type MatchScoreInput struct {
	Candidate match.CandidateProfile `json:"candidate"`
	Job       match.JobPosting       `json:"job"`
}

// MatchScoreOutput is the output for job_match_score.
type MatchScoreOutput struct {
	Result  match.MatchResult `json:"result"`
	Grade   string            `json:"grade"`
	Summary string            `json:"summary"`
}

func registerMatchScore(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_match_score",
		Description: "Score one candidate profile against one job posting. Returns a 0-100 overall score with per-dimension breakdown (skills, experience, education, location), keyword evidence from the description, a letter grade, and improvement suggestions.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input MatchScoreInput) (*mcp.CallToolResult, MatchScoreOutput, error) {
		if input.Job.ID == "" && input.Job.Title == "" {
			return nil, MatchScoreOutput{}, fmt.Errorf("job is required")
		}
		engine.IncrMatchRequests()

		cacheKey := cacheKeyJSON("match_score", input)
		if out, ok := engine.LoadJSON[MatchScoreOutput](ctx, deps.Cache, cacheKey); ok {
			return nil, out, nil
		}

		result := match.ScoreApplication(input.Candidate, input.Job)
		grade := match.ScoreToGrade(result.OverallScore)

		out := MatchScoreOutput{
			Result:  result,
			Grade:   grade,
			Summary: fmt.Sprintf("%s at %s: %d/100 (%s)", input.Job.Title, input.Job.Company, result.OverallScore, grade),
		}
		engine.StoreJSON(ctx, deps.Cache, cacheKey, out)
		return nil, out, nil
	})
}

// cacheKeyJSON builds a deterministic cache key from a tool name and its
// marshaled input.
func cacheKeyJSON(tool string, input any) string {
	data, err := json.Marshal(input)
	if err != nil {
		return engine.Key(tool)
	}
	return engine.Key(tool, string(data))
}
