// Package match implements the candidate–job matching and filtering engine:
// structured job filtering, weighted match scoring with explainable
// breakdowns, skill-gap analysis, and career-transition projection.
//
// Every exported function in this package is a pure function of its inputs.
// Result types are plain data so callers can serialize them however they like.
package match

// JobType classifies the employment arrangement of a posting.
type JobType string

const (
	TypeFullTime   JobType = "full-time"
	TypePartTime   JobType = "part-time"
	TypeContract   JobType = "contract"
	TypeInternship JobType = "internship"
	TypeTemporary  JobType = "temporary"
)

// ExperienceLevel classifies the seniority a posting targets.
type ExperienceLevel string

const (
	LevelIntern    ExperienceLevel = "intern"
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
	LevelManager   ExperienceLevel = "manager"
	LevelDirector  ExperienceLevel = "director"
)

// WorkModel describes where the work happens.
type WorkModel string

const (
	ModelOnsite WorkModel = "onsite"
	ModelHybrid WorkModel = "hybrid"
	ModelRemote WorkModel = "remote"
)

// Salary is a posted compensation range. Min/Max are annual amounts.
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// CandidatePreferences captures what a candidate wants, used by the
// recommendation scorer and translatable into JobFilters.
type CandidatePreferences struct {
	Roles             []string `json:"roles,omitempty"`
	Locations         []string `json:"locations,omitempty"`
	RemoteOnly        bool     `json:"remote_only,omitempty"`
	JobTypes          []string `json:"job_types,omitempty"`
	MinSalary         int      `json:"min_salary,omitempty"`
	ExcludedCompanies []string `json:"excluded_companies,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
}

// CandidateProfile is the candidate side of every scoring operation.
// Skills are compared case-insensitively everywhere.
type CandidateProfile struct {
	Skills          []string              `json:"skills"`
	ExperienceYears float64               `json:"experience_years"`
	Education       []string              `json:"education,omitempty"`
	Location        string                `json:"location,omitempty"`
	Preferences     *CandidatePreferences `json:"preferences,omitempty"`
}

// JobPosting is one job record as supplied by the data-access collaborator.
// Optional fields degrade to neutral behavior when absent — see score.go.
type JobPosting struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Description  string          `json:"description,omitempty"`
	Location     string          `json:"location,omitempty"`
	Remote       bool            `json:"remote,omitempty"`
	Type         JobType         `json:"type,omitempty"`
	Level        ExperienceLevel `json:"level,omitempty"`
	Skills       []string        `json:"skills,omitempty"`
	Requirements []string        `json:"requirements,omitempty"`
	Salary       *Salary         `json:"salary,omitempty"`
	Education    []string        `json:"education,omitempty"`
	WorkModel    WorkModel       `json:"work_model,omitempty"`
	Benefits     []string        `json:"benefits,omitempty"`
	CompanyType  string          `json:"company_type,omitempty"`
	CompanySize  string          `json:"company_size,omitempty"`
	JobFunction  string          `json:"job_function,omitempty"`
	URL          string          `json:"url,omitempty"`
}

// Default salary range bounds. A filter whose range equals [0, 300000]
// (or the zero value) is treated as "no salary constraint".
const (
	DefaultSalaryFloor = 0
	DefaultSalaryCeil  = 300000
)

// JobFilters is the closed set of recognized filter options. A zero-value
// field never excludes any job.
type JobFilters struct {
	Search           string   `json:"search,omitempty"`
	Location         string   `json:"location,omitempty"`
	Remote           bool     `json:"remote,omitempty"`
	JobTypes         []string `json:"job_types,omitempty"`
	ExperienceLevels []string `json:"experience_levels,omitempty"`
	SalaryMin        int      `json:"salary_min,omitempty"`
	SalaryMax        int      `json:"salary_max,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Companies        []string `json:"companies,omitempty"`
	Title            string   `json:"title,omitempty"`
	JobFunction      string   `json:"job_function,omitempty"`
	CompanyTypes     []string `json:"company_types,omitempty"`
	CompanySizes     []string `json:"company_sizes,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	HideAppliedJobs  bool     `json:"hide_applied_jobs,omitempty"`
}

// KeywordMatch is one candidate skill found in a job description, with its
// whole-word occurrence count.
type KeywordMatch struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// MatchResult is the explainable output of the application scorer.
// Scores are integers in [0,100]. Never mutated after construction.
type MatchResult struct {
	OverallScore           int            `json:"overall_score"`
	SkillScore             int            `json:"skill_score"`
	ExperienceScore        int            `json:"experience_score"`
	EducationScore         int            `json:"education_score"`
	LocationScore          int            `json:"location_score"`
	KeywordMatches         []KeywordMatch `json:"keyword_matches,omitempty"`
	MatchReasons           []string       `json:"match_reasons,omitempty"`
	ImprovementSuggestions []string       `json:"improvement_suggestions,omitempty"`
}

// JobRecommendation is one ranked entry from the recommendation scorer.
type JobRecommendation struct {
	Job     JobPosting `json:"job"`
	Score   int        `json:"score"`
	Reasons []string   `json:"reasons,omitempty"`
}

// GapAnalysis reports which required skills a candidate has and lacks.
// SkillGapPercentage is the missing share of the requirement list, 0–100.
type GapAnalysis struct {
	MatchingSkills     []string `json:"matching_skills"`
	MissingSkills      []string `json:"missing_skills"`
	SkillGapPercentage int      `json:"skill_gap_percentage"`
}

// CareerPath is one historical role-to-role transition record.
type CareerPath struct {
	FromRole               string   `json:"from_role"`
	ToRole                 string   `json:"to_role"`
	Industry               string   `json:"industry,omitempty"`
	TransitionProbability  float64  `json:"transition_probability"`
	RequiredSkills         []string `json:"required_skills,omitempty"`
	RecommendedSkills      []string `json:"recommended_skills,omitempty"`
	AverageTimelineMonths  int      `json:"average_timeline_months,omitempty"`
	SalaryChangePercentage float64  `json:"salary_change_percentage,omitempty"`
}

// CareerRecommendation wraps a CareerPath with candidate-specific scoring.
type CareerRecommendation struct {
	Path           CareerPath  `json:"path"`
	MatchScore     int         `json:"match_score"`
	GapAnalysis    GapAnalysis `json:"gap_analysis"`
	TimelineMonths int         `json:"timeline_months"`
	NextSteps      []string    `json:"next_steps,omitempty"`
}
