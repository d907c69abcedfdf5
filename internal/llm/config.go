// Package llm provides the text-generation client abstraction used to
// produce resume analysis reports.
package llm

// DefaultModel is the model used when no override is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds generation settings for the LLM client.
type Config struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the generation settings used for analysis
// reports: a low temperature for consistent output and a bounded
// response size.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		Temperature:     0.1,
		MaxOutputTokens: 1200,
	}
}

// WithModel returns a copy of the config using the given model name.
// Empty names are ignored.
func (c *Config) WithModel(model string) *Config {
	copied := *c
	if model != "" {
		copied.Model = model
	}
	return &copied
}
