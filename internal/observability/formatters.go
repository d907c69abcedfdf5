// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/ats"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreBreakdown outputs the final score and its component
// sub-scores.
func (p *Printer) PrintScoreBreakdown(breakdown ats.Breakdown) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final Score:       %d/100\n", breakdown.Score))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keyword Match:     %d/50\n", breakdown.KeywordMatch))
	sb.WriteString(fmt.Sprintf("Experience Match:  %d/25\n", breakdown.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Structure:         %d/15\n", breakdown.StructureScore))
	sb.WriteString(fmt.Sprintf("Role Bonuses:      %d/20\n", breakdown.RoleSpecificScore))
	sb.WriteString(fmt.Sprintf("Penalty:          -%d/20", breakdown.OverqualificationPenalty))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintKeywordComparison outputs which job-description keywords were
// found in the resume and which are missing.
func (p *Printer) PrintKeywordComparison(matched, missing []string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Matched %d of %d job keywords\n", len(matched), len(matched)+len(missing)))

	if len(matched) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", matched[i]))
		}
		if len(matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(matched)-maxItemsToShow))
		}
	}

	if len(missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", missing[i]))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}
