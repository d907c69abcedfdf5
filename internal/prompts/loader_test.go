package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	system, err := Get("system")
	require.NoError(t, err)
	assert.Contains(t, system, "ATS expert")
	assert.Contains(t, system, "{{.Score}}")

	analyze, err := Get("analyze-resume")
	require.NoError(t, err)
	assert.Contains(t, analyze, "{{.Resume}}")
	assert.Contains(t, analyze, "{{.Job}}")
	assert.Contains(t, analyze, "{{.Interpretation}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("no-such-prompt")

	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("score {{.Score}} for {{.Name}}", map[string]string{
		"Score": "85",
		"Name":  "resume",
	})

	assert.Equal(t, "score 85 for resume", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Missing}} stays", map[string]string{"Other": "x"})

	assert.Equal(t, "{{.Missing}} stays", result)
}
