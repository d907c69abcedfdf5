package ats

import (
	"regexp"
	"strings"
)

// extractionPatterns mine candidate terms directly from the text:
// dotted product names (Node.js style), all-caps acronyms, and phrases
// ending in a qualifier word. The first two are case-sensitive and only
// fire when the input still carries uppercase letters.
var extractionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][a-z]+\.[a-z]+\b`),
	regexp.MustCompile(`\b[A-Z]{2,}\b`),
	regexp.MustCompile(`(?i)\b\w+(?:\s+\w+)*(?:\s+(?:experience|skills?|knowledge|proficiency|motivated|enthusiastic))\b`),
}

// ExtractKeywords returns the deduplicated keyword terms found in text.
// It unions the curated list for the detected industry with terms mined
// from the text itself, then keeps only terms that literally occur as a
// substring of the lowercased text. Ordering is deterministic (curated
// terms first, then mined terms) but callers must not rely on it.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	industry := DetectIndustry(lower)
	curated := industryKeywordList(industry)
	mined := extractFromText(lower)

	seen := make(map[string]bool, len(curated)+len(mined))
	var keywords []string
	for _, term := range curated {
		if seen[term] {
			continue
		}
		seen[term] = true
		if strings.Contains(lower, term) {
			keywords = append(keywords, term)
		}
	}
	for _, term := range mined {
		if seen[term] {
			continue
		}
		seen[term] = true
		if strings.Contains(lower, term) {
			keywords = append(keywords, term)
		}
	}
	return keywords
}

// DetectIndustry classifies text into one of the known industry labels,
// or "general" when no indicator phrase is present. Text is expected to
// be lowercased already.
func DetectIndustry(text string) string {
	for _, rule := range industryRules {
		for _, indicator := range rule.indicators {
			if strings.Contains(text, indicator) {
				return rule.label
			}
		}
	}
	return "general"
}

// industryKeywordList returns the curated keyword list for an industry,
// falling back to the general list.
func industryKeywordList(industry string) []string {
	if list, ok := industryKeywords[industry]; ok {
		return list
	}
	return industryKeywords["general"]
}

// extractFromText mines candidate terms from the text via the extraction
// patterns and the synonym table. Results are lowercased and deduplicated.
func extractFromText(text string) []string {
	seen := make(map[string]bool)
	var terms []string
	add := func(term string) {
		term = strings.ToLower(term)
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	for _, pattern := range extractionPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			add(match)
		}
	}

	for _, syn := range keywordSynonyms {
		for _, alias := range syn.aliases {
			if strings.Contains(text, alias) {
				add(syn.canonical)
				break
			}
		}
	}

	return terms
}
