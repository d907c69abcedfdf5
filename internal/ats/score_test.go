package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const mernResume = "MERN stack developer, 3 years experience with React, Node.js, MongoDB, Express.js. " +
	"Skills: JavaScript, API development. Education: BS Computer Science. " +
	"Contact: dev@example.com, 555-123-4567"

const mernJob = "Looking for a MERN stack developer with React and Node.js experience, 2-5 years, mid-level position"

func TestCalculateATSScore_Bounds(t *testing.T) {
	inputs := []struct {
		name   string
		resume string
		job    string
	}{
		{"empty", "", ""},
		{"unrelated", "I like turtles", "quantum basket weaving"},
		{"heavy penalty", "senior architect with 20 years of experience", "junior intern position"},
		{"strong match", mernResume, mernJob},
	}

	for _, input := range inputs {
		t.Run(input.name, func(t *testing.T) {
			score := CalculateATSScore(input.resume, input.job)

			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestCalculateATSScore_EmptyInputs(t *testing.T) {
	// Empty texts still yield a defined score: no keywords, structure or
	// role bonuses, but both sides default to mid seniority (25 points).
	assert.Equal(t, 25, CalculateATSScore("", ""))
}

func TestCalculateATSScore_IdenticalTextFullKeywordMatch(t *testing.T) {
	text := "software developer with react and docker experience"

	breakdown := GetDetailedAnalysis(text, text)

	assert.Equal(t, 50, breakdown.KeywordMatch)
}

func TestCalculateATSScore_MERNScenario(t *testing.T) {
	score := CalculateATSScore(mernResume, mernJob)

	assert.GreaterOrEqual(t, score, 80)

	breakdown := GetDetailedAnalysis(mernResume, mernJob)
	assert.Equal(t, 0, breakdown.OverqualificationPenalty)
	assert.Equal(t, 25, breakdown.ExperienceMatch)
	assert.Equal(t, 20, breakdown.RoleSpecificScore)
}

func TestGetDetailedAnalysis_MatchesCalculateATSScore(t *testing.T) {
	pairs := []struct {
		resume string
		job    string
	}{
		{mernResume, mernJob},
		{"senior architect with 20 years of experience", "junior intern position"},
		{"", ""},
		{"marketing manager running seo campaigns", "seo specialist for email marketing"},
	}

	for _, pair := range pairs {
		breakdown := GetDetailedAnalysis(pair.resume, pair.job)

		assert.Equal(t, CalculateATSScore(pair.resume, pair.job), breakdown.Score)
	}
}

func TestCalculateExperienceScore_EqualSeniority(t *testing.T) {
	score := calculateExperienceScore("senior backend engineer", "senior platform role")

	assert.Equal(t, 25.0, score)
}

func TestCalculateExperienceScore_AdjacentSeniority(t *testing.T) {
	score := calculateExperienceScore("junior developer", "mid-level developer")

	assert.Equal(t, 15.0, score)
}

func TestCalculateExperienceScore_RelevantSkillsAboveJobLevel(t *testing.T) {
	// Two levels apart, but the resume shows stack-relevant skills and
	// outranks the job.
	score := calculateExperienceScore("senior react specialist", "junior position")

	assert.Equal(t, 15.0, score)
}

func TestCalculateExperienceScore_GenericExperienceIndicator(t *testing.T) {
	// Two levels apart, no relevant skills, but a generic indicator
	// ("worked") is present.
	score := calculateExperienceScore("junior cashier who worked in retail", "senior lead role")

	assert.Equal(t, 10.0, score)
}

func TestCalculateExperienceScore_NoSignals(t *testing.T) {
	score := calculateExperienceScore("junior cashier", "senior lead role")

	assert.Equal(t, 5.0, score)
}

func TestCalculateStructureScore_CompleteResume(t *testing.T) {
	resume := "experience education skills projects contact@example.com 123-456-7890"

	assert.Equal(t, 15.0, calculateStructureScore(resume))
}

func TestCalculateStructureScore_SectionsOnly(t *testing.T) {
	resume := "experience education skills projects"

	assert.Equal(t, 10.0, calculateStructureScore(resume))
}

func TestCalculateStructureScore_PhoneWordCountsAsContact(t *testing.T) {
	assert.Equal(t, 2.5, calculateStructureScore("phone available on request"))
}

func TestCalculateStructureScore_Empty(t *testing.T) {
	assert.Equal(t, 0.0, calculateStructureScore(""))
}

func TestCalculateRoleSpecificScore_ClampAtTwenty(t *testing.T) {
	text := "mern mean full stack react node"

	// All four bonuses fire (raw 40); the clamp holds the score at 20.
	assert.Equal(t, 20.0, calculateRoleSpecificScore(text, text))
}

func TestCalculateRoleSpecificScore_SingleBonus(t *testing.T) {
	score := calculateRoleSpecificScore("react and node projects", "react and node developer wanted")

	assert.Equal(t, 10.0, score)
}

func TestCalculateRoleSpecificScore_NoOverlap(t *testing.T) {
	score := calculateRoleSpecificScore("python data engineer", "mern stack developer")

	assert.Equal(t, 0.0, score)
}

func TestCalculateOverqualificationPenalty_ClampAtTwenty(t *testing.T) {
	// Multiple rules fire simultaneously (15+10+8+7 raw); the clamp holds
	// the penalty at 20.
	penalty := calculateOverqualificationPenalty(
		"senior software engineer with 7 years experience",
		"junior developer internship",
	)

	assert.Equal(t, 20.0, penalty)
}

func TestCalculateOverqualificationPenalty_NoPenaltyForAlignedLevels(t *testing.T) {
	penalty := calculateOverqualificationPenalty(
		"mid level developer with 3 years of experience",
		"mid level role",
	)

	assert.Equal(t, 0.0, penalty)
}

func TestCalculateOverqualificationPenalty_YearsAgainstInternRole(t *testing.T) {
	// 6 years against an intern posting: the >=5 rule (10) and the >=3
	// rule (8) both fire.
	penalty := calculateOverqualificationPenalty(
		"developer with 6 years of experience",
		"intern position",
	)

	assert.Equal(t, 18.0, penalty)
}

func TestGetScoreInterpretation_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{95, "Exceptional Match"},
		{90, "Exceptional Match"},
		{89, "Good Match"},
		{80, "Good Match"},
		{79, "Fair Match"},
		{70, "Fair Match"},
		{69, "Poor Match"},
		{60, "Poor Match"},
		{59, "Very Poor Match"},
		{0, "Very Poor Match"},
	}

	for _, tc := range cases {
		assert.Contains(t, GetScoreInterpretation(tc.score), tc.want)
	}
}
