package match

import (
	"reflect"
	"testing"
)

func TestNormalizeSkills(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		got := NormalizeSkills([]string{"  React ", "NODE.JS"})
		want := []string{"react", "node.js"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("deduplicates preserving order", func(t *testing.T) {
		got := NormalizeSkills([]string{"Go", "go", "SQL", "GO", "sql"})
		want := []string{"go", "sql"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("drops empty entries", func(t *testing.T) {
		got := NormalizeSkills([]string{"", "  ", "go"})
		if len(got) != 1 || got[0] != "go" {
			t.Errorf("got %v, want [go]", got)
		}
	})
}

func TestExtractKeywordMatches(t *testing.T) {
	t.Run("counts whole words case-insensitively", func(t *testing.T) {
		got := ExtractKeywordMatches("React React developer with react experience", []string{"React"})
		if len(got) != 1 {
			t.Fatalf("expected 1 match, got %v", got)
		}
		if got[0].Keyword != "React" || got[0].Count != 3 {
			t.Errorf("got %+v, want {React 3}", got[0])
		}
	})

	t.Run("word boundary excludes partial words", func(t *testing.T) {
		got := ExtractKeywordMatches("We use reactive programming", []string{"React"})
		if len(got) != 0 {
			t.Errorf("expected no matches inside 'reactive', got %v", got)
		}
	})

	t.Run("omits zero-count skills", func(t *testing.T) {
		got := ExtractKeywordMatches("Python and SQL daily", []string{"Python", "Rust", "SQL"})
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %v", got)
		}
	})

	t.Run("sorts by count descending, stable ties", func(t *testing.T) {
		desc := "Go Go Go with Python and SQL, more Python"
		got := ExtractKeywordMatches(desc, []string{"SQL", "Python", "Go"})
		want := []KeywordMatch{{"Go", 3}, {"Python", 2}, {"SQL", 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}

		// Equal counts keep the candidate's skill order.
		tied := ExtractKeywordMatches("Go and Python", []string{"Python", "Go"})
		if tied[0].Keyword != "Python" || tied[1].Keyword != "Go" {
			t.Errorf("tie order not stable: %v", tied)
		}
	})

	t.Run("handles tech punctuation terms", func(t *testing.T) {
		got := ExtractKeywordMatches("Looking for a C++ developer. C++ required.", []string{"C++"})
		if len(got) != 1 || got[0].Count != 2 {
			t.Errorf("got %v, want one C++ match with count 2", got)
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		if got := ExtractKeywordMatches("", []string{"Go"}); got != nil {
			t.Errorf("expected nil for empty description, got %v", got)
		}
		if got := ExtractKeywordMatches("Go everywhere", nil); got != nil {
			t.Errorf("expected nil for no skills, got %v", got)
		}
	})
}

func TestExtractTechnicalTerms(t *testing.T) {
	got := ExtractTechnicalTerms("Senior Python engineer working with Docker, Kubernetes and AWS")
	want := map[string]bool{"python": true, "docker": true, "kubernetes": true, "aws": true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want terms %v", got, want)
	}
	for _, term := range got {
		if !want[term] {
			t.Errorf("unexpected term %q", term)
		}
	}
}

func TestExtractResumeKeywords(t *testing.T) {
	kw := ExtractResumeKeywords("Built the team's CI/CD pipeline in Go and C++ at a job I loved")

	for _, want := range []string{"pipeline", "c++", "built"} {
		if !kw[want] {
			t.Errorf("expected keyword %q in %v", want, kw)
		}
	}
	// Stop words and short tokens are discarded.
	for _, absent := range []string{"the", "and", "job", "at", "go", "a"} {
		if kw[absent] {
			t.Errorf("keyword %q should have been discarded", absent)
		}
	}
}
