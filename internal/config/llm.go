package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/raanand/careerbot/pkg/log"
)

type LLMConfig struct {
	// Model that answers visitors
	ResponderModel string `env:"RESPONDER_MODEL" envDefault:"gpt-5-mini"`
	// Reserved for a response-validation pass; declared but not invoked
	ValidatorModel string `env:"VALIDATOR_MODEL" envDefault:"gemini-2.0-flash-lite"`

	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`

	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey  string `env:"OLLAMA_API_KEY"`

	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}
