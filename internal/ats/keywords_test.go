package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIndustry_Tech(t *testing.T) {
	industry := DetectIndustry("experienced software developer looking for backend roles")

	assert.Equal(t, "tech", industry)
}

func TestDetectIndustry_FirstRuleWins(t *testing.T) {
	// "software" (tech) and "designer" (design) are both present; tech is
	// checked first so it wins.
	industry := DetectIndustry("software designer")

	assert.Equal(t, "tech", industry)
}

func TestDetectIndustry_Design(t *testing.T) {
	industry := DetectIndustry("designer building visual prototypes in figma")

	assert.Equal(t, "design", industry)
}

func TestDetectIndustry_NoSignal(t *testing.T) {
	industry := DetectIndustry("bananas and apples")

	assert.Equal(t, "general", industry)
}

func TestDetectIndustry_EmptyText(t *testing.T) {
	industry := DetectIndustry("")

	assert.Equal(t, "general", industry)
}

func TestExtractKeywords_FiltersAbsentCuratedTerms(t *testing.T) {
	keywords := ExtractKeywords("software developer using react and docker")

	// Only the curated tech terms literally present in the text survive.
	assert.ElementsMatch(t, []string{"react", "docker"}, keywords)
}

func TestExtractKeywords_QualifierPhrases(t *testing.T) {
	keywords := ExtractKeywords("strong communication skills")

	assert.Contains(t, keywords, "communication")
	assert.Contains(t, keywords, "strong communication skills")
}

func TestExtractKeywords_SynonymCanonicalPresent(t *testing.T) {
	keywords := ExtractKeywords("software engineer building restful apis")

	// "restful" triggers the synonym and the canonical phrase occurs
	// literally, so it survives the substring filter.
	assert.Contains(t, keywords, "restful apis")
	assert.Contains(t, keywords, "api")
}

func TestExtractKeywords_SynonymCanonicalAbsent(t *testing.T) {
	keywords := ExtractKeywords("software engineer building rest apis")

	// The alias matches but "restful apis" never occurs in the text, so
	// the canonical phrase is filtered out.
	assert.NotContains(t, keywords, "restful apis")
}

func TestExtractKeywords_CaseInsensitive(t *testing.T) {
	keywords := ExtractKeywords("REACT and Docker Developer")

	assert.Contains(t, keywords, "react")
	assert.Contains(t, keywords, "docker")
}

func TestExtractKeywords_EmptyText(t *testing.T) {
	keywords := ExtractKeywords("")

	assert.Empty(t, keywords)
}

func TestExtractKeywords_GeneralFallbackForUncuratedIndustry(t *testing.T) {
	// "hiring" classifies as hr, which has no curated list of its own and
	// falls back to the general soft-skill terms.
	keywords := ExtractKeywords("hiring coordinator with strong communication")

	assert.Contains(t, keywords, "communication")
}

func TestExtractKeywords_Deduplicates(t *testing.T) {
	keywords := ExtractKeywords("react react react developer")

	seen := make(map[string]int)
	for _, keyword := range keywords {
		seen[keyword]++
	}
	for keyword, count := range seen {
		assert.Equal(t, 1, count, "keyword %q appears more than once", keyword)
	}
}
