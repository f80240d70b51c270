// Package llm wraps the Gemini API behind a small client interface and maps
// abstract model tiers onto concrete model names.
package llm

// ModelTier names a capability level rather than a concrete model, so
// callers pick "how hard is this task" and the config picks the model.
type ModelTier string

const (
	// TierLite serves cheap classification and short extraction calls.
	TierLite ModelTier = "lite"
	// TierStandard serves first-draft document generation.
	TierStandard ModelTier = "standard"
	// TierAdvanced serves the regeneration pass, where a draft flagged by
	// the consistency check is rewritten with the violations fed back.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies the backing LLM provider.
type Provider string

// ProviderGemini is the Google Gemini provider, the only one wired up.
const ProviderGemini Provider = "gemini"

// Config maps model tiers to concrete model names for one provider.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini tier mapping.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves a tier to a model name, falling back to the standard
// tier and then the lite tier when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
