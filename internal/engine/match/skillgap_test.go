package match

import (
	"reflect"
	"testing"
)

func TestAnalyzeGap(t *testing.T) {
	t.Run("case-insensitive match", func(t *testing.T) {
		gap := AnalyzeGap([]string{"Python", "SQL"}, []string{"python"})
		if !reflect.DeepEqual(gap.MatchingSkills, []string{"python"}) {
			t.Errorf("matching = %v, want [python]", gap.MatchingSkills)
		}
		if len(gap.MissingSkills) != 0 {
			t.Errorf("missing = %v, want empty", gap.MissingSkills)
		}
		if gap.SkillGapPercentage != 0 {
			t.Errorf("gap = %d, want 0", gap.SkillGapPercentage)
		}
	})

	t.Run("bidirectional substring containment", func(t *testing.T) {
		gap := AnalyzeGap([]string{"React"}, []string{"React.js"})
		if gap.SkillGapPercentage != 0 {
			t.Errorf("React should satisfy React.js, gap = %d", gap.SkillGapPercentage)
		}

		gap = AnalyzeGap([]string{"React.js"}, []string{"React"})
		if gap.SkillGapPercentage != 0 {
			t.Errorf("React.js should satisfy React, gap = %d", gap.SkillGapPercentage)
		}
	})

	t.Run("partial gap percentage", func(t *testing.T) {
		gap := AnalyzeGap([]string{"Go"}, []string{"Go", "Rust", "Python"})
		if gap.SkillGapPercentage != 67 {
			t.Errorf("gap = %d, want 67 (2 of 3 missing)", gap.SkillGapPercentage)
		}
		if len(gap.MatchingSkills) != 1 || len(gap.MissingSkills) != 2 {
			t.Errorf("matching=%v missing=%v", gap.MatchingSkills, gap.MissingSkills)
		}
	})

	t.Run("empty requirements mean no gap", func(t *testing.T) {
		gap := AnalyzeGap([]string{"Go"}, nil)
		if gap.SkillGapPercentage != 0 {
			t.Errorf("gap = %d, want 0 for empty requirements", gap.SkillGapPercentage)
		}
	})

	t.Run("empty candidate misses everything", func(t *testing.T) {
		gap := AnalyzeGap(nil, []string{"Go", "SQL"})
		if gap.SkillGapPercentage != 100 {
			t.Errorf("gap = %d, want 100", gap.SkillGapPercentage)
		}
	})

	t.Run("duplicate requirements counted once", func(t *testing.T) {
		gap := AnalyzeGap([]string{"go"}, []string{"Go", "GO", "Rust"})
		if gap.SkillGapPercentage != 50 {
			t.Errorf("gap = %d, want 50 (1 of 2 unique missing)", gap.SkillGapPercentage)
		}
	})
}
