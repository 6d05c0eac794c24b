package factory

import (
	"fmt"
	"time"

	"mindful-campus-be/pkg/llm"
	"mindful-campus-be/pkg/llm/openai"
)

const ProviderOpenAI = "openai"

// NewLLMProvider builds the configured backend. A missing API key yields
// a nil provider, which callers treat as fallback-only mode.
func NewLLMProvider(providerType, apiKey, baseURL, modelName string, timeout time.Duration) (llm.LLMProvider, error) {
	if apiKey == "" {
		return nil, nil
	}

	switch providerType {
	case ProviderOpenAI, "":
		return openai.NewOpenAIProvider(apiKey, baseURL, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
