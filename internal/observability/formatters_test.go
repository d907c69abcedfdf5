package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-analyzer/internal/ats"
)

func TestPrintScoreBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(ats.Breakdown{
		Score:                    91,
		KeywordMatch:             33,
		ExperienceMatch:          25,
		StructureScore:           13,
		RoleSpecificScore:        20,
		OverqualificationPenalty: 0,
	})

	out := buf.String()
	assert.Contains(t, out, "SCORE BREAKDOWN")
	assert.Contains(t, out, "Final Score:       91/100")
	assert.Contains(t, out, "Keyword Match:     33/50")
	assert.Contains(t, out, "Penalty:          -0/20")
}

func TestPrintKeywordComparison(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywordComparison(
		[]string{"react", "node.js"},
		[]string{"kubernetes"},
	)

	out := buf.String()
	assert.Contains(t, out, "KEYWORD COMPARISON")
	assert.Contains(t, out, "Matched 2 of 3 job keywords")
	assert.Contains(t, out, "✓ react")
	assert.Contains(t, out, "✗ kubernetes")
}

func TestPrintKeywordComparison_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matched := []string{"react", "node.js", "mongodb", "typescript", "graphql", "redis", "docker"}
	p.PrintKeywordComparison(matched, nil)

	out := buf.String()
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "✓ docker")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
