package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/raanand/careerbot/pkg/log"
)

type AppConfig struct {
	RuntimePath   string `env:"CAREERBOT_RUNTIME_PATH" envDefault:".careerbot"`
	ResourcesPath string `env:"CAREERBOT_RESOURCES_PATH" envDefault:"resources"`

	// The person this bot speaks as
	CandidateName string `env:"CANDIDATE_NAME" envDefault:"Rahul Anand"`

	// Allow selecting the provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableTUI      bool `env:"ENABLE_TUI" envDefault:"true"`

	// Context Management
	ContextWindowSize int `env:"CONTEXT_WINDOW_SIZE" envDefault:"30"`

	// Cap on model round trips within a single user turn
	MaxToolRounds int `env:"MAX_TOOL_ROUNDS" envDefault:"10"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetProfilePDFPath() string {
	return filepath.Join(c.ResourcesPath, "ProfileLinkedIn.pdf")
}

func (c AppConfig) GetProjectsPDFPath() string {
	return filepath.Join(c.ResourcesPath, "ProjectsLinkedIn.pdf")
}

func (c AppConfig) GetSummaryPath() string {
	return filepath.Join(c.ResourcesPath, "summary.txt")
}
