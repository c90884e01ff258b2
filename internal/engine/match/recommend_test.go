package match

import (
	"testing"
)

func TestRecommendJobs_JobSkillDenominator(t *testing.T) {
	// The recommendation scorer divides by the job's skill count, not the
	// candidate's: 2 of 4 requested skills = half of the 40 skill points.
	candidate := CandidateProfile{Skills: []string{"Go", "SQL"}}
	job := JobPosting{
		ID: "j1", Title: "Backend Engineer", Company: "X",
		Skills: []string{"Go", "SQL", "Kafka", "Terraform"},
	}

	recs := RecommendJobs(candidate, []JobPosting{job})
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	// 20 skill points + neutral 20+20+10+10 for unstated preferences.
	if recs[0].Score != 80 {
		t.Errorf("score = %d, want 80", recs[0].Score)
	}
	if len(recs[0].Reasons) == 0 {
		t.Error("expected a skill reason")
	}

	// Contrast with the application scorer, which uses the gap analyzer:
	// same pair scores 100-50=50 on the skill dimension there.
	app := ScoreApplication(candidate, job)
	if app.SkillScore != 50 {
		t.Errorf("application skill score = %d, want 50", app.SkillScore)
	}
}

func TestRecommendJobs_PreferenceDimensions(t *testing.T) {
	candidate := CandidateProfile{
		Skills: []string{"Go"},
		Preferences: &CandidatePreferences{
			JobTypes:   []string{"contract"},
			RemoteOnly: true,
			MinSalary:  80000,
			Roles:      []string{"platform"},
			Keywords:   []string{"kubernetes", "grpc"},
		},
	}
	job := JobPosting{
		ID: "j1", Title: "Platform Engineer (Contract)", Company: "X",
		Description: "gRPC services on Kubernetes",
		Remote:      true,
		Type:        TypeContract,
		Skills:      []string{"Go"},
		Salary:      &Salary{Min: 90000, Max: 120000},
	}

	recs := RecommendJobs(candidate, []JobPosting{job})
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	// 40 skills + 20 type + 20 remote + 10 salary + 10 title + 4 keyword bonus
	if recs[0].Score != 100 {
		t.Errorf("score = %d, want 100 (104 clamped)", recs[0].Score)
	}
	if len(recs[0].Reasons) != 6 {
		t.Errorf("expected 6 reasons, got %v", recs[0].Reasons)
	}
}

func TestRecommendJobs_KeywordBonusCap(t *testing.T) {
	kws := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta"}
	candidate := CandidateProfile{
		Skills:      []string{"Go"},
		Preferences: &CandidatePreferences{Keywords: kws},
	}
	job := JobPosting{
		ID: "j1", Title: "Engineer", Company: "X",
		Description: "alpha beta gamma delta epsilon zeta eta",
		Skills:      []string{"Go"},
	}

	recs := RecommendJobs(candidate, []JobPosting{job})
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	// 40 skills + 60 neutral dims would be 100; bonus must cap at +10 and
	// the total clamps at 100 either way, so check the bonus in isolation:
	score, _ := recommendationScore(CandidateProfile{Preferences: &CandidatePreferences{Keywords: kws}}, JobPosting{
		ID: "j2", Description: "alpha beta gamma delta epsilon zeta eta",
		Skills: []string{"Rust"}, // zero skill points
	})
	// 0 skills + 20+20+10+10 neutral + capped 10 bonus
	if score != 70 {
		t.Errorf("score = %d, want 70 (bonus capped at 10)", score)
	}
}

func TestRecommendJobs_CutoffAndSorting(t *testing.T) {
	candidate := CandidateProfile{
		Skills: []string{"Go"},
		Preferences: &CandidatePreferences{
			JobTypes:   []string{"full-time"},
			RemoteOnly: true,
			MinSalary:  100000,
			Roles:      []string{"backend"},
		},
	}
	jobs := []JobPosting{
		// Nothing matches: 0 points, dropped.
		{ID: "bad", Title: "Sales Lead", Company: "X", Type: TypeContract, Skills: []string{"CRM"}},
		// Partial match.
		{ID: "mid", Title: "Backend Developer", Company: "Y", Type: TypeContract, Remote: true, Skills: []string{"Go", "Rust"}},
		// Strong match.
		{ID: "top", Title: "Backend Engineer", Company: "Z", Type: TypeFullTime, Remote: true,
			Skills: []string{"Go"}, Salary: &Salary{Min: 110000, Max: 140000}},
	}

	recs := RecommendJobs(candidate, jobs)
	if len(recs) != 2 {
		t.Fatalf("expected the zero-score job to be dropped, got %d recs", len(recs))
	}
	if recs[0].Job.ID != "top" || recs[1].Job.ID != "mid" {
		t.Errorf("order = [%s %s], want [top mid]", recs[0].Job.ID, recs[1].Job.ID)
	}
	if recs[0].Score <= recs[1].Score {
		t.Errorf("not sorted descending: %d then %d", recs[0].Score, recs[1].Score)
	}
}

func TestRecommendJobs_EmptyPool(t *testing.T) {
	recs := RecommendJobs(CandidateProfile{Skills: []string{"Go"}}, nil)
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %v", recs)
	}
}
