package llm

import (
	"context"
	"fmt"

	"github.com/raanand/careerbot/internal/config"
	"github.com/raanand/careerbot/internal/core"
	"github.com/raanand/careerbot/pkg/log"
)

// NewProvider creates the responder AIProvider based on configuration.
func NewProvider(ctx context.Context, provider string, cfg *config.LLMConfig) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", provider).
		Str("model", cfg.ResponderModel).
		Msg("starting llm provider")

	switch provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.ResponderModel), nil
	case "openrouter":
		return NewOpenRouter(cfg.OpenRouterAPIKey, cfg.ResponderModel), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.ResponderModel), nil
	case "custom":
		return NewCustomOpenAI(cfg.CustomOpenAIBaseURL, cfg.CustomOpenAIAPIKey, cfg.ResponderModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}

// ModelLister is implemented by every provider and enumerates the models
// the configured account can use.
type ModelLister interface {
	Models(ctx context.Context) ([]core.Model, error)
}

// NewModelLister creates a provider purely for model enumeration. The
// responder model is irrelevant here, so it is left empty.
func NewModelLister(provider string, cfg *config.LLMConfig) (ModelLister, error) {
	switch provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, ""), nil
	case "openrouter":
		return NewOpenRouter(cfg.OpenRouterAPIKey, ""), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, ""), nil
	case "custom":
		return NewCustomOpenAI(cfg.CustomOpenAIBaseURL, cfg.CustomOpenAIAPIKey, ""), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
