package matchserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_match/internal/engine"
	"github.com/anatolykoptev/go_match/internal/engine/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SkillGapInput is the input for skill_gap.
type SkillGapInput struct {
	CandidateSkills []string `json:"candidate_skills"`
	RequiredSkills  []string `json:"required_skills"`
}

// SkillGapOutput is the output for skill_gap.
type SkillGapOutput struct {
	Gap     match.GapAnalysis `json:"gap"`
	Summary string            `json:"summary"`
}

func registerSkillGap(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_gap",
		Description: "Compare a candidate's skills against a requirement list. Matching is case-insensitive bidirectional substring containment (React matches React.js). Returns matching skills, missing skills, and the gap percentage.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SkillGapInput) (*mcp.CallToolResult, SkillGapOutput, error) {
		engine.IncrSkillGapRequests()

		gap := match.AnalyzeGap(input.CandidateSkills, input.RequiredSkills)
		return nil, SkillGapOutput{
			Gap: gap,
			Summary: fmt.Sprintf("%d matching, %d missing (%d%% gap).",
				len(gap.MatchingSkills), len(gap.MissingSkills), gap.SkillGapPercentage),
		}, nil
	})
}
