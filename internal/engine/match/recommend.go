package match

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Recommendation score weights (Profile B). Skill coverage is scored against
// the job's skill list size here — "how much of what this job asks for do you
// have" — unlike ScoreApplication, which scores via the shared gap analyzer.
// The two denominators differ on purpose; do not unify them.
const (
	recWeightSkills   = 40.0
	recWeightJobType  = 20.0
	recWeightLocation = 20.0
	recWeightSalary   = 10.0
	recWeightTitle    = 10.0

	recKeywordBonusPer = 2.0
	recKeywordBonusCap = 10.0

	// Recommendations below this score are dropped as noise.
	recMinScore = 30
)

// RecommendJobs ranks a pool of jobs for one candidate using the
// preference-aware recommendation score. Results are filtered to scores
// above recMinScore and sorted descending; ties keep input order.
func RecommendJobs(candidate CandidateProfile, jobs []JobPosting) []JobRecommendation {
	recs := make([]JobRecommendation, 0, len(jobs))
	for _, job := range jobs {
		score, reasons := recommendationScore(candidate, job)
		if score <= recMinScore {
			continue
		}
		recs = append(recs, JobRecommendation{Job: job, Score: score, Reasons: reasons})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

// recommendationScore computes the Profile B score for one job. Dimensions
// without a stated preference contribute their full weight as neutral, with
// no reason line; only genuine matches explain themselves.
func recommendationScore(candidate CandidateProfile, job JobPosting) (int, []string) {
	var sum float64
	var reasons []string

	prefs := candidate.Preferences
	if prefs == nil {
		prefs = &CandidatePreferences{}
	}

	// Skill coverage against the job's requirement list.
	if len(job.Skills) > 0 {
		jobSkills := NormalizeSkills(job.Skills)
		candSkills := NormalizeSkills(candidate.Skills)
		matched := 0
		for _, js := range jobSkills {
			for _, cs := range candSkills {
				if skillsMatch(cs, js) {
					matched++
					break
				}
			}
		}
		sum += float64(matched) / float64(len(jobSkills)) * recWeightSkills
		if matched > 0 {
			reasons = append(reasons, fmt.Sprintf("You have %d of %d skills this job asks for", matched, len(jobSkills)))
		}
	} else {
		sum += recWeightSkills
	}

	// Job type preference.
	if len(prefs.JobTypes) > 0 {
		if containsFold(prefs.JobTypes, string(job.Type)) {
			sum += recWeightJobType
			reasons = append(reasons, fmt.Sprintf("Matches your preferred %s arrangement", job.Type))
		}
	} else {
		sum += recWeightJobType
	}

	// Location / remote preference, falling back to the candidate's own
	// location when no explicit preference is set.
	locPts, locReason := locationPreferenceScore(candidate, prefs, job)
	sum += locPts
	if locReason != "" {
		reasons = append(reasons, locReason)
	}

	// Salary floor.
	if prefs.MinSalary > 0 {
		if job.Salary != nil && job.Salary.Max >= prefs.MinSalary {
			sum += recWeightSalary
			reasons = append(reasons, "Salary meets your minimum")
		}
	} else {
		sum += recWeightSalary
	}

	// Title / role preference.
	if len(prefs.Roles) > 0 {
		title := strings.ToLower(job.Title)
		for _, role := range prefs.Roles {
			if role != "" && strings.Contains(title, strings.ToLower(role)) {
				sum += recWeightTitle
				reasons = append(reasons, "Title matches a preferred role: "+role)
				break
			}
		}
	} else {
		sum += recWeightTitle
	}

	// Keyword bonus: 2 points per preference keyword found in the
	// description, capped.
	if len(prefs.Keywords) > 0 && job.Description != "" {
		desc := strings.ToLower(job.Description)
		bonus := 0.0
		hits := 0
		for _, kw := range prefs.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(desc, kw) {
				bonus += recKeywordBonusPer
				hits++
			}
		}
		if bonus > recKeywordBonusCap {
			bonus = recKeywordBonusCap
		}
		if hits > 0 {
			sum += bonus
			reasons = append(reasons, fmt.Sprintf("Mentions %d of your keywords", hits))
		}
	}

	score := int(math.Round(sum))
	if score > 100 {
		score = 100
	}
	return score, reasons
}

func locationPreferenceScore(candidate CandidateProfile, prefs *CandidatePreferences, job JobPosting) (float64, string) {
	if prefs.RemoteOnly {
		if job.Remote {
			return recWeightLocation, "Remote, as you prefer"
		}
		return 0, ""
	}
	if len(prefs.Locations) > 0 {
		loc := strings.ToLower(job.Location)
		for _, want := range prefs.Locations {
			if want != "" && strings.Contains(loc, strings.ToLower(want)) {
				return recWeightLocation, "Located in " + want
			}
		}
		if job.Remote {
			return recWeightLocation, "Remote role"
		}
		return 0, ""
	}
	// No stated preference: fall back to the candidate's own location.
	if candidate.Location == "" || job.Remote {
		return recWeightLocation, ""
	}
	cand := strings.ToLower(strings.TrimSpace(candidate.Location))
	loc := strings.ToLower(job.Location)
	if job.Location == "" || strings.Contains(loc, cand) || strings.Contains(cand, loc) {
		return recWeightLocation, ""
	}
	return 0, ""
}
