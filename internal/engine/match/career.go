package match

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// defaultTimelineMonths is used when a path record omits its average
// transition timeline.
const defaultTimelineMonths = 12

// maxNextSteps caps the action list on a career recommendation.
const maxNextSteps = 5

// RecommendCareerPaths ranks target roles reachable from currentRole using
// the supplied transition catalog, sorted by match score descending. industry
// narrows the catalog when both the argument and the record carry one.
// experienceYears may be zero when unknown.
func RecommendCareerPaths(paths []CareerPath, currentRole string, candidateSkills []string, industry string, experienceYears float64) []CareerRecommendation {
	if experienceYears < 0 {
		experienceYears = 0
	}

	var recs []CareerRecommendation
	for _, path := range paths {
		if !roleMatches(path.FromRole, currentRole) {
			continue
		}
		if industry != "" && path.Industry != "" && !strings.EqualFold(industry, path.Industry) {
			continue
		}

		gap := AnalyzeGap(candidateSkills, path.RequiredSkills)

		recs = append(recs, CareerRecommendation{
			Path:           path,
			MatchScore:     transitionScore(path, gap, experienceYears),
			GapAnalysis:    gap,
			TimelineMonths: timelineEstimate(path, gap, experienceYears),
			NextSteps:      nextSteps(path, gap),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	return recs
}

func roleMatches(pathRole, currentRole string) bool {
	a := strings.ToLower(strings.TrimSpace(pathRole))
	b := strings.ToLower(strings.TrimSpace(currentRole))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// transitionScore blends the historical transition base rate, the candidate's
// skill readiness, and an experience factor, clamped to [0,100].
func transitionScore(path CareerPath, gap GapAnalysis, experienceYears float64) int {
	readiness := float64(100 - gap.SkillGapPercentage)
	if readiness < 0 {
		readiness = 0
	}

	// Experience only counts when both sides are known: the caller supplied
	// years and the record carries a timeline.
	experienceFactor := 0.0
	if experienceYears > 0 && path.AverageTimelineMonths > 0 {
		experienceFactor = math.Min(1, experienceYears*12/float64(path.AverageTimelineMonths))
	}

	score := path.TransitionProbability*40 + readiness*0.4 + experienceFactor*20
	return clampScore(int(math.Round(score)))
}

// timelineEstimate stretches the average timeline by the skill gap, then
// adjusts for the candidate's seniority: seasoned candidates move faster,
// very junior ones slower. Result is whole months.
func timelineEstimate(path CareerPath, gap GapAnalysis, experienceYears float64) int {
	base := float64(path.AverageTimelineMonths)
	if base <= 0 {
		base = defaultTimelineMonths
	}

	months := base * (1 + float64(gap.SkillGapPercentage)/100)
	switch {
	case experienceYears > 5:
		months *= 0.8
	case experienceYears < 2:
		months *= 1.3
	}
	return int(math.Round(months))
}

func nextSteps(path CareerPath, gap GapAnalysis) []string {
	var steps []string

	if len(gap.MissingSkills) > 0 {
		top := gap.MissingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		steps = append(steps, "Develop missing skills: "+strings.Join(top, ", "))
	}
	if len(path.RecommendedSkills) > 0 {
		top := path.RecommendedSkills
		if len(top) > 2 {
			top = top[:2]
		}
		steps = append(steps, "Strengthen recommended skills: "+strings.Join(top, ", "))
	}

	steps = append(steps,
		fmt.Sprintf("Build a portfolio of projects that demonstrate %s skills", path.ToRole),
		fmt.Sprintf("Network with professionals working as %s", path.ToRole),
	)

	if path.SalaryChangePercentage > 0 {
		steps = append(steps, fmt.Sprintf("Prepare to negotiate — this move typically pays %.0f%% more", path.SalaryChangePercentage))
	}

	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}
