package oracle

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterOracle creates an oracle targeting the OpenRouter API, which
// is OpenAI-compatible. OpenRouter reports exhausted credits as 402.
func NewOpenRouterOracle(cfg ProviderConfig) (*OpenAIOracle, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterBaseURL
	}
	return newOpenAICompatible(cfg), nil
}
