package match

import (
	"fmt"
	"strings"
)

// FilterJobs applies every active predicate in filters conjunctively and
// returns the surviving subset, preserving input order. appliedIDs is only
// consulted when HideAppliedJobs is set; nil is fine.
//
// A zero-value filter field never excludes a job, so FilterJobs(jobs,
// JobFilters{}, nil) returns every job.
func FilterJobs(jobs []JobPosting, filters JobFilters, appliedIDs map[string]bool) []JobPosting {
	out := make([]JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if jobPasses(job, filters, appliedIDs) {
			out = append(out, job)
		}
	}
	return out
}

func jobPasses(job JobPosting, f JobFilters, appliedIDs map[string]bool) bool {
	if f.HideAppliedJobs && appliedIDs[job.ID] {
		return false
	}

	if f.Search != "" {
		haystack := strings.ToLower(job.Title + " " + job.Company + " " + job.Description + " " + strings.Join(job.Skills, " "))
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}

	// Location and remote interact: an explicit location filter is satisfied
	// either by a location substring match or by a remote job when the remote
	// flag is also set. The remote flag alone is strict.
	if f.Location != "" {
		locMatch := strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location))
		if !locMatch && !(f.Remote && job.Remote) {
			return false
		}
	} else if f.Remote && !job.Remote {
		return false
	}

	if len(f.JobTypes) > 0 && !containsFold(f.JobTypes, string(job.Type)) {
		return false
	}
	if len(f.ExperienceLevels) > 0 && !containsFold(f.ExperienceLevels, string(job.Level)) {
		return false
	}
	if len(f.CompanyTypes) > 0 && !containsFold(f.CompanyTypes, job.CompanyType) {
		return false
	}
	if len(f.CompanySizes) > 0 && !containsFold(f.CompanySizes, job.CompanySize) {
		return false
	}

	if salaryConstrained(f) {
		// Strict containment: the posted range must sit entirely inside the
		// requested band. A job without salary data cannot satisfy an active
		// salary constraint.
		if job.Salary == nil {
			return false
		}
		if job.Salary.Min < f.SalaryMin || job.Salary.Max > f.SalaryMax {
			return false
		}
	}

	if len(f.Skills) > 0 && !anySkillOverlap(f.Skills, job.Skills) {
		return false
	}

	if len(f.Companies) > 0 {
		company := strings.ToLower(job.Company)
		hit := false
		for _, c := range f.Companies {
			if c != "" && strings.Contains(company, strings.ToLower(c)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if f.Title != "" && !strings.Contains(strings.ToLower(job.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.JobFunction != "" && !strings.Contains(strings.ToLower(job.JobFunction), strings.ToLower(f.JobFunction)) {
		return false
	}

	if len(f.Benefits) > 0 {
		hit := false
		for _, want := range f.Benefits {
			for _, have := range job.Benefits {
				if want != "" && strings.Contains(strings.ToLower(have), strings.ToLower(want)) {
					hit = true
					break
				}
			}
			if hit {
				break
			}
		}
		if !hit {
			return false
		}
	}

	return true
}

// salaryConstrained reports whether the salary range differs from the
// unconstrained default. Both the zero value and the UI default
// [0, 300000] mean "no constraint".
func salaryConstrained(f JobFilters) bool {
	if f.SalaryMin == 0 && f.SalaryMax == 0 {
		return false
	}
	if f.SalaryMin == DefaultSalaryFloor && f.SalaryMax == DefaultSalaryCeil {
		return false
	}
	return true
}

// anySkillOverlap reports whether any requested skill matches any job skill
// by bidirectional case-insensitive substring containment.
func anySkillOverlap(requested, jobSkills []string) bool {
	for _, want := range NormalizeSkills(requested) {
		for _, have := range NormalizeSkills(jobSkills) {
			if skillsMatch(want, have) {
				return true
			}
		}
	}
	return false
}

// containsFold reports whether set contains v, case-insensitively.
func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// CountActiveFilters returns how many constraints are currently enforced:
// one per active scalar filter plus the size of each non-empty set. A filter
// is counted here exactly when jobPasses enforces it.
func CountActiveFilters(f JobFilters) int {
	n := 0
	if f.Search != "" {
		n++
	}
	if f.Location != "" {
		n++
	}
	if f.Remote {
		n++
	}
	if f.Title != "" {
		n++
	}
	if f.JobFunction != "" {
		n++
	}
	if f.HideAppliedJobs {
		n++
	}
	if salaryConstrained(f) {
		n++
	}
	n += len(f.JobTypes)
	n += len(f.ExperienceLevels)
	n += len(f.Skills)
	n += len(f.Companies)
	n += len(f.CompanyTypes)
	n += len(f.CompanySizes)
	n += len(f.Benefits)
	return n
}

// DescribeActiveFilters returns one human-readable line per enforced
// constraint, in a stable order, for UI display.
func DescribeActiveFilters(f JobFilters) []string {
	var desc []string
	if f.Search != "" {
		desc = append(desc, fmt.Sprintf("search: %q", f.Search))
	}
	if f.Location != "" {
		desc = append(desc, "location: "+f.Location)
	}
	if f.Remote {
		desc = append(desc, "remote only")
	}
	if len(f.JobTypes) > 0 {
		desc = append(desc, "type: "+strings.Join(f.JobTypes, ", "))
	}
	if len(f.ExperienceLevels) > 0 {
		desc = append(desc, "level: "+strings.Join(f.ExperienceLevels, ", "))
	}
	if salaryConstrained(f) {
		desc = append(desc, fmt.Sprintf("salary: %d–%d", f.SalaryMin, f.SalaryMax))
	}
	if len(f.Skills) > 0 {
		desc = append(desc, "skills: "+strings.Join(f.Skills, ", "))
	}
	if len(f.Companies) > 0 {
		desc = append(desc, "company: "+strings.Join(f.Companies, ", "))
	}
	if f.Title != "" {
		desc = append(desc, "title: "+f.Title)
	}
	if f.JobFunction != "" {
		desc = append(desc, "function: "+f.JobFunction)
	}
	if len(f.CompanyTypes) > 0 {
		desc = append(desc, "company type: "+strings.Join(f.CompanyTypes, ", "))
	}
	if len(f.CompanySizes) > 0 {
		desc = append(desc, "company size: "+strings.Join(f.CompanySizes, ", "))
	}
	if len(f.Benefits) > 0 {
		desc = append(desc, "benefits: "+strings.Join(f.Benefits, ", "))
	}
	if f.HideAppliedJobs {
		desc = append(desc, "hiding applied jobs")
	}
	return desc
}
