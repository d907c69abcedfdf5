package ats

import (
	"regexp"
	"strconv"
	"strings"
)

// Seniority levels inferred from free text.
const (
	SeniorityJunior = 1
	SeniorityMid    = 2
	SenioritySenior = 3
)

// DetectSeniorityLevel infers a coarse seniority level from free text.
// Checks run in priority order and the first match wins: a text
// containing both "senior" and "junior" is classified senior. No signal
// defaults to mid.
func DetectSeniorityLevel(text string) int {
	text = strings.ToLower(text)
	switch {
	case containsAny(text, "senior", "lead", "architect"):
		return SenioritySenior
	case containsAny(text, "mid", "intermediate", "2-5 years"):
		return SeniorityMid
	case containsAny(text, "junior", "entry", "0-2 years"):
		return SeniorityJunior
	default:
		return SeniorityMid
	}
}

// yearPatterns are tried in order against the resume text; the first
// pattern that matches supplies the years value.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)experience.*?(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:in\s*)?(?:the\s*)?(?:field|industry|role)`),
}

// ExtractYearsOfExperience pulls a years-of-experience figure out of
// resume text. Only the first matching pattern is consulted, and values
// outside [0, 50] are discarded. Returns 0 when nothing usable is found.
func ExtractYearsOfExperience(resume string) int {
	for _, pattern := range yearPatterns {
		match := pattern.FindStringSubmatch(resume)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err == nil && years >= 0 && years <= 50 {
			return years
		}
	}
	return 0
}

// containsAny reports whether text contains any of the given substrings.
func containsAny(text string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
