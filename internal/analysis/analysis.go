// Package analysis generates LLM-written compatibility reports for a
// resume against a job description, anchored to the deterministic ATS
// score.
package analysis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonathan/ats-analyzer/internal/ats"
	"github.com/jonathan/ats-analyzer/internal/llm"
	"github.com/jonathan/ats-analyzer/internal/prompts"
)

// Prompt text limits. The scorer sees the full inputs; only the LLM
// prompt is truncated.
const (
	maxResumePromptChars = 3000
	maxJobPromptChars    = 2000
)

// Result holds the generated report together with the computed score.
type Result struct {
	Score  int
	Report string
}

// Generate computes the ATS score for the full inputs and asks the LLM
// for a written analysis anchored to that score.
func Generate(ctx context.Context, client llm.Client, resumeText, jobDescription string) (*Result, error) {
	score := ats.CalculateATSScore(resumeText, jobDescription)

	system := prompts.Format(prompts.MustGet("system"), map[string]string{
		"Score": strconv.Itoa(score),
	})
	prompt := BuildPrompt(score, resumeText, jobDescription)

	report, err := client.GenerateContent(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("analysis generation failed: %w", err)
	}
	if report == "" {
		return nil, fmt.Errorf("empty response from LLM")
	}

	return &Result{Score: score, Report: report}, nil
}

// BuildPrompt renders the analysis prompt template with truncated input
// texts and the score interpretation.
func BuildPrompt(score int, resumeText, jobDescription string) string {
	return prompts.Format(prompts.MustGet("analyze-resume"), map[string]string{
		"Score":          strconv.Itoa(score),
		"Resume":         truncate(resumeText, maxResumePromptChars),
		"Job":            truncate(jobDescription, maxJobPromptChars),
		"Interpretation": ats.GetScoreInterpretation(score),
	})
}

// truncate caps text at limit bytes, marking the cut.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "...(truncated)"
}
