package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/ats"
	"github.com/jonathan/ats-analyzer/internal/extract"
	"github.com/jonathan/ats-analyzer/internal/fetch"
	"github.com/jonathan/ats-analyzer/internal/observability"
	"github.com/spf13/cobra"
)

var (
	scoreResumePath string
	scoreJobPath    string
	scoreJobURL     string
	scoreDetailed   bool
	scoreVerbose    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description offline",
	Long:  "Compute the deterministic compatibility score for a resume and job description without calling the LLM. Accepts plain text or PDF resumes.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Path to resume file (.txt or .pdf) (required)")
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL to fetch the job description from")
	scoreCmd.Flags().BoolVarP(&scoreDetailed, "detailed", "d", false, "Print the full score breakdown as JSON")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print formatted breakdown and keyword comparison boxes")

	scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if scoreJobPath == "" && scoreJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if scoreJobPath != "" && scoreJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	resumeText, err := readResume(scoreResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jobDescription string
	if scoreJobPath != "" {
		data, err := os.ReadFile(scoreJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(data)
	} else {
		jobDescription, err = fetch.JobDescription(cmd.Context(), scoreJobURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	}

	if scoreDetailed {
		breakdown := ats.GetDetailedAnalysis(resumeText, jobDescription)
		encoded, err := json.MarshalIndent(breakdown, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode breakdown: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(encoded))
		return nil
	}

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreBreakdown(ats.GetDetailedAnalysis(resumeText, jobDescription))
		matched, missing := compareKeywords(resumeText, jobDescription)
		printer.PrintKeywordComparison(matched, missing)
	}

	score := ats.CalculateATSScore(resumeText, jobDescription)
	fmt.Fprintf(os.Stdout, "Score: %d/100\n", score)
	fmt.Fprintln(os.Stdout, ats.GetScoreInterpretation(score))
	return nil
}

// compareKeywords splits the job description's keywords into those
// present in the resume and those absent from it.
func compareKeywords(resumeText, jobDescription string) (matched, missing []string) {
	resume := strings.ToLower(resumeText)
	for _, keyword := range ats.ExtractKeywords(strings.ToLower(jobDescription)) {
		if strings.Contains(resume, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	return matched, missing
}

func readResume(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		file, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return "", err
		}
		return extract.PDFText(file, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
