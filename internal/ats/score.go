// Package ats implements the deterministic resume-vs-job-description
// compatibility scorer. The scorer is a pure function of its two text
// inputs: keyword overlap, seniority alignment, resume structure and
// role-specific bonuses are combined additively, an overqualification
// penalty is subtracted, and the result is clamped to [0, 100].
package ats

import (
	"math"
	"regexp"
	"strings"
)

// Score component caps.
const (
	maxKeywordScore      = 50.0
	maxStructureScore    = 15.0
	maxRoleSpecificScore = 20.0
	maxPenalty           = 20.0
)

// Breakdown holds the component sub-scores behind a final ATS score.
// Sub-scores are rounded for display; Score is computed from the
// unrounded components, so the fields do not necessarily sum to Score.
type Breakdown struct {
	Score                    int `json:"score"`
	KeywordMatch             int `json:"keywordMatch"`
	ExperienceMatch          int `json:"experienceMatch"`
	StructureScore           int `json:"structureScore"`
	RoleSpecificScore        int `json:"roleSpecificScore"`
	OverqualificationPenalty int `json:"overqualificationPenalty"`
}

// CalculateATSScore computes the 0-100 compatibility score for a resume
// against a job description. Matching is case-insensitive; both inputs
// are lowercased before any extraction.
func CalculateATSScore(resumeText, jobDescription string) int {
	resume := strings.ToLower(resumeText)
	job := strings.ToLower(jobDescription)

	final := keywordMatchScore(resume, job) +
		calculateExperienceScore(resume, job) +
		calculateStructureScore(resume) +
		calculateRoleSpecificScore(resume, job) -
		calculateOverqualificationPenalty(resume, job)

	return clampScore(final)
}

// GetDetailedAnalysis recomputes every sub-score and the final score
// using the same stage functions as CalculateATSScore.
func GetDetailedAnalysis(resumeText, jobDescription string) Breakdown {
	resume := strings.ToLower(resumeText)
	job := strings.ToLower(jobDescription)

	keywordMatch := keywordMatchScore(resume, job)
	experienceMatch := calculateExperienceScore(resume, job)
	structureScore := calculateStructureScore(resume)
	roleSpecificScore := calculateRoleSpecificScore(resume, job)
	penalty := calculateOverqualificationPenalty(resume, job)

	return Breakdown{
		Score:                    clampScore(keywordMatch + experienceMatch + structureScore + roleSpecificScore - penalty),
		KeywordMatch:             int(math.Round(keywordMatch)),
		ExperienceMatch:          int(math.Round(experienceMatch)),
		StructureScore:           int(math.Round(structureScore)),
		RoleSpecificScore:        int(math.Round(roleSpecificScore)),
		OverqualificationPenalty: int(math.Round(penalty)),
	}
}

// keywordMatchScore scales the fraction of job-description keywords also
// present in the resume to a 50-point maximum.
func keywordMatchScore(resume, job string) float64 {
	jobKeywords := ExtractKeywords(job)
	resumeKeywords := ExtractKeywords(resume)

	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, keyword := range resumeKeywords {
		resumeSet[keyword] = true
	}

	matched := 0
	for _, keyword := range jobKeywords {
		if resumeSet[keyword] {
			matched++
		}
	}

	return float64(matched) / math.Max(float64(len(jobKeywords)), 1) * maxKeywordScore
}

var experienceIndicators = []string{"years", "experience", "worked", "developed", "built", "created"}

var relevantSkillSignals = []string{"mern", "react", "node.js", "express.js"}

// calculateExperienceScore scores seniority alignment between resume and
// job on a fixed decision table (0-25). Branch order matters: the first
// true branch wins and later branches are skipped.
func calculateExperienceScore(resume, job string) float64 {
	hasExperience := containsAny(resume, experienceIndicators...)
	hasRelevantSkills := containsAny(resume, relevantSkillSignals...)

	jobSeniority := DetectSeniorityLevel(job)
	resumeSeniority := DetectSeniorityLevel(resume)

	switch {
	case jobSeniority == resumeSeniority:
		return 25
	case abs(jobSeniority-resumeSeniority) == 1:
		return 15
	case hasRelevantSkills && resumeSeniority > jobSeniority:
		return 15
	case hasExperience:
		return 10
	default:
		return 5
	}
}

var resumeSections = []string{"experience", "education", "skills", "projects"}

var phonePattern = regexp.MustCompile(`\d{3}-\d{3}-\d{4}`)

// calculateStructureScore awards 2.5 points per present resume section
// plus contact-info signals, clamped to 15.
func calculateStructureScore(resume string) float64 {
	var score float64
	for _, section := range resumeSections {
		if strings.Contains(resume, section) {
			score += 2.5
		}
	}
	if strings.Contains(resume, "@") || strings.Contains(resume, "email") {
		score += 2.5
	}
	if strings.Contains(resume, "phone") || phonePattern.MatchString(resume) {
		score += 2.5
	}
	return math.Min(maxStructureScore, score)
}

// roleRule is an independent (predicate, points) bonus applied when both
// texts mention a specific stack.
type roleRule struct {
	points float64
	match  func(resume, job string) bool
}

var roleSpecificRules = []roleRule{
	{10, func(resume, job string) bool {
		return strings.Contains(job, "mern") && strings.Contains(resume, "mern")
	}},
	{10, func(resume, job string) bool {
		return strings.Contains(job, "mean") && strings.Contains(resume, "mean")
	}},
	{10, func(resume, job string) bool {
		return strings.Contains(job, "full stack") && strings.Contains(resume, "full stack")
	}},
	{10, func(resume, job string) bool {
		return strings.Contains(job, "react") && strings.Contains(job, "node") &&
			strings.Contains(resume, "react") && strings.Contains(resume, "node")
	}},
}

// calculateRoleSpecificScore sums the role bonuses and clamps to 20. The
// raw sum can reach 40, so the clamp is load-bearing.
func calculateRoleSpecificScore(resume, job string) float64 {
	var score float64
	for _, rule := range roleSpecificRules {
		if rule.match(resume, job) {
			score += rule.points
		}
	}
	return math.Min(maxRoleSpecificScore, score)
}

// penaltyContext carries the precomputed signals the penalty rules check.
type penaltyContext struct {
	resume          string
	job             string
	resumeYears     int
	resumeSeniority int
	jobSeniority    int
}

// penaltyRules are checked independently; every rule that holds adds its
// points before the clamp.
var penaltyRules = []struct {
	points float64
	match  func(penaltyContext) bool
}{
	{15, func(c penaltyContext) bool {
		return c.resumeSeniority == SenioritySenior && c.jobSeniority <= SeniorityJunior
	}},
	// Unreachable: DetectSeniorityLevel never returns 0.
	{10, func(c penaltyContext) bool {
		return c.resumeSeniority == SeniorityMid && c.jobSeniority == 0
	}},
	{10, func(c penaltyContext) bool {
		return c.resumeYears >= 5 && containsAny(c.job, "intern", "junior")
	}},
	{8, func(c penaltyContext) bool {
		return c.resumeYears >= 3 && strings.Contains(c.job, "intern")
	}},
	{7, func(c penaltyContext) bool {
		return strings.Contains(c.resume, "senior") && containsAny(c.job, "junior", "intern")
	}},
}

// calculateOverqualificationPenalty deducts points when the candidate's
// inferred seniority or years of experience substantially exceed the
// role's apparent level. Clamped to 20.
func calculateOverqualificationPenalty(resume, job string) float64 {
	ctx := penaltyContext{
		resume:          resume,
		job:             job,
		resumeYears:     ExtractYearsOfExperience(resume),
		resumeSeniority: DetectSeniorityLevel(resume),
		jobSeniority:    DetectSeniorityLevel(job),
	}

	var penalty float64
	for _, rule := range penaltyRules {
		if rule.match(ctx) {
			penalty += rule.points
		}
	}
	return math.Min(maxPenalty, penalty)
}

// clampScore rounds to the nearest integer, then clamps to [0, 100].
func clampScore(score float64) int {
	rounded := math.Round(score)
	return int(math.Max(0, math.Min(100, rounded)))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
