package match

import (
	"sort"
	"strings"
	"unicode"
)

// stopWords filters common English words that add noise to keyword extraction.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
}

// techVocabulary is the fixed term list scanned by ExtractTechnicalTerms.
var techVocabulary = []string{
	"javascript", "typescript", "python", "java", "golang", "rust", "ruby",
	"c++", "c#", "php", "swift", "kotlin", "scala", "sql",
	"react", "angular", "vue", "svelte", "next.js", "node.js", "express",
	"django", "flask", "spring", "rails", ".net", "graphql", "rest",
	"html", "css", "sass", "tailwind",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "ci/cd",
	"aws", "azure", "gcp", "linux", "git",
	"machine learning", "data science", "tensorflow", "pytorch",
	"agile", "scrum", "microservices", "devops",
}

// NormalizeSkills lower-cases, trims, and deduplicates a skill list,
// preserving first-seen order. Empty entries are dropped.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// ExtractTechnicalTerms scans free text for known technology terms
// (case-insensitive substring match) and returns the subset present,
// in vocabulary order.
func ExtractTechnicalTerms(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, term := range techVocabulary {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// ExtractKeywordMatches counts whole-word, case-insensitive occurrences of
// each candidate skill inside a job description. Zero-count skills are
// omitted; results are sorted by count descending, ties keeping the
// candidate's skill order.
func ExtractKeywordMatches(description string, candidateSkills []string) []KeywordMatch {
	if description == "" || len(candidateSkills) == 0 {
		return nil
	}
	lower := strings.ToLower(description)

	var matches []KeywordMatch
	seen := make(map[string]bool)
	for _, skill := range candidateSkills {
		kw := strings.ToLower(strings.TrimSpace(skill))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		if n := countWordOccurrences(lower, kw); n > 0 {
			matches = append(matches, KeywordMatch{Keyword: skill, Count: n})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Count > matches[j].Count
	})
	return matches
}

// countWordOccurrences counts non-overlapping occurrences of word in text
// where both neighbors are non-word characters. Both inputs must already be
// lower-cased. Word characters are letters and digits, so terms like "c++"
// and "node.js" match at their natural boundaries.
func countWordOccurrences(text, word string) int {
	if word == "" {
		return 0
	}
	count := 0
	for i := 0; ; {
		idx := strings.Index(text[i:], word)
		if idx < 0 {
			break
		}
		start := i + idx
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
		}
		i = end
	}
	return count
}

func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r := rune(text[pos-1])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r := rune(text[pos])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// ExtractResumeKeywords tokenizes resume-like text into a lowercase keyword
// set, skipping stop words and tokens shorter than 3 runes. Tech suffixes
// like "c++", "c#", and "node.js" survive tokenization.
func ExtractResumeKeywords(text string) map[string]bool {
	kw := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		w = strings.TrimRight(w, ".") // drop trailing dots
		if len([]rune(w)) >= 3 && !stopWords[w] {
			kw[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return kw
}
