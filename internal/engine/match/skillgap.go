package match

import (
	"math"
	"strings"
)

// skillsMatch reports whether two already-normalized skills refer to the same
// thing: either contains the other, so "react" matches "react.js" both ways.
func skillsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// AnalyzeGap compares a candidate's skills against a requirement list.
// Matching is case-insensitive bidirectional substring containment.
// SkillGapPercentage = round(missing / max(required, 1) * 100); an empty
// requirement list means no gap. Shared by the job scorer and the
// career-transition projector.
func AnalyzeGap(candidateSkills, requiredSkills []string) GapAnalysis {
	cand := NormalizeSkills(candidateSkills)
	req := NormalizeSkills(requiredSkills)

	matching := make([]string, 0, len(req))
	missing := make([]string, 0, len(req))
	for _, r := range req {
		found := false
		for _, c := range cand {
			if skillsMatch(c, r) {
				found = true
				break
			}
		}
		if found {
			matching = append(matching, r)
		} else {
			missing = append(missing, r)
		}
	}

	total := len(req)
	if total < 1 {
		total = 1
	}
	pct := int(math.Round(float64(len(missing)) / float64(total) * 100))

	return GapAnalysis{
		MatchingSkills:     matching,
		MissingSkills:      missing,
		SkillGapPercentage: pct,
	}
}
