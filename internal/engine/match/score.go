package match

import (
	"fmt"
	"math"
	"strings"
)

// Weights for the application score (Profile A).
const (
	weightSkills     = 0.40
	weightExperience = 0.30
	weightEducation  = 0.20
	weightLocation   = 0.10
)

// ScoreApplication computes the 0–100 application match between one candidate
// and one job, with a per-dimension breakdown, keyword evidence, and
// improvement suggestions. Missing optional data degrades to neutral scores;
// this function never fails.
//
// The skill dimension is scored against the candidate's coverage of the
// job's requirement list via AnalyzeGap. The recommendation scorer uses a
// different denominator on purpose — see RecommendJobs.
func ScoreApplication(candidate CandidateProfile, job JobPosting) MatchResult {
	gap := AnalyzeGap(candidate.Skills, job.Skills)

	skillScore := 100 - gap.SkillGapPercentage
	if len(job.Skills) == 0 || len(candidate.Skills) == 0 {
		// Nothing to compare on either side: neutral, not zero.
		skillScore = 100
	}

	expScore := experienceScore(job.Level, candidate.ExperienceYears)
	eduScore := educationScore(candidate.Education, job.Education)
	locScore := locationScore(candidate.Location, job)

	overall := int(math.Round(
		float64(skillScore)*weightSkills +
			float64(expScore)*weightExperience +
			float64(eduScore)*weightEducation +
			float64(locScore)*weightLocation))

	result := MatchResult{
		OverallScore:    clampScore(overall),
		SkillScore:      clampScore(skillScore),
		ExperienceScore: clampScore(expScore),
		EducationScore:  clampScore(eduScore),
		LocationScore:   clampScore(locScore),
		KeywordMatches:  ExtractKeywordMatches(job.Description, candidate.Skills),
	}
	result.MatchReasons = matchReasons(result, gap, job)
	result.ImprovementSuggestions = improvementSuggestions(result, gap, job)
	return result
}

// experienceScore applies the per-level experience ladder. Levels without a
// documented requirement score 100. Negative years are clamped to zero.
func experienceScore(level ExperienceLevel, years float64) int {
	if years < 0 {
		years = 0
	}
	switch {
	case level == LevelSenior && years < 5:
		return minInt(100, int(years*20))
	case level == LevelMid && years < 3:
		return minInt(100, int(years*33))
	case level == LevelEntry && years < 1:
		return minInt(100, int(years*100))
	default:
		return 100
	}
}

// educationScore is neutral (100) when either side has no education data,
// 100 on any credential match, else 50.
func educationScore(candidate, required []string) int {
	if len(required) == 0 || len(candidate) == 0 {
		return 100
	}
	for _, have := range candidate {
		for _, want := range required {
			if credentialMatch(have, want) {
				return 100
			}
		}
	}
	return 50
}

func credentialMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// locationScore is neutral when the job has no location, the candidate has
// none, or the job is remote; 100 on a substring match either way; 75 for
// hybrid roles; else 50.
func locationScore(candidateLocation string, job JobPosting) int {
	if job.Location == "" || strings.TrimSpace(candidateLocation) == "" || job.Remote {
		return 100
	}
	cand := strings.ToLower(strings.TrimSpace(candidateLocation))
	loc := strings.ToLower(job.Location)
	if strings.Contains(loc, cand) || strings.Contains(cand, loc) {
		return 100
	}
	if job.WorkModel == ModelHybrid {
		return 75
	}
	return 50
}

func matchReasons(r MatchResult, gap GapAnalysis, job JobPosting) []string {
	var reasons []string
	if len(gap.MatchingSkills) > 0 {
		reasons = append(reasons, fmt.Sprintf("You match %d of %d required skills", len(gap.MatchingSkills), len(gap.MatchingSkills)+len(gap.MissingSkills)))
	}
	if r.ExperienceScore == 100 && job.Level != "" {
		reasons = append(reasons, fmt.Sprintf("Your experience fits the %s level", job.Level))
	}
	if r.EducationScore == 100 && len(job.Education) > 0 {
		reasons = append(reasons, "You meet the education requirement")
	}
	if r.LocationScore == 100 && job.Remote {
		reasons = append(reasons, "This role is remote")
	}
	return reasons
}

// improvementSuggestions emits one line per deficient dimension.
func improvementSuggestions(r MatchResult, gap GapAnalysis, job JobPosting) []string {
	var out []string

	if len(gap.MissingSkills) > 0 {
		shown := gap.MissingSkills
		suffix := ""
		if len(shown) > 3 {
			shown = shown[:3]
			suffix = ", …"
		}
		out = append(out, "Consider learning: "+strings.Join(shown, ", ")+suffix)
	}
	if r.ExperienceScore < 70 {
		out = append(out, fmt.Sprintf("This %s role typically expects more experience", job.Level))
	}
	if r.EducationScore < 70 {
		out = append(out, "Required education: "+strings.Join(job.Education, ", "))
	}
	if r.LocationScore < 70 && !job.Remote {
		out = append(out, "This role is based in "+job.Location)
	}
	return out
}

// ScoreToGrade maps a 0–100 score onto the letter-grade ladder in fixed
// 5-point bands: A+ (≥90) down to F (<40).
func ScoreToGrade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	case score >= 45:
		return "D+"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
